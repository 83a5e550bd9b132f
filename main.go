package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"monopolysim/internal/catalog"
	"monopolysim/internal/config"
	"monopolysim/internal/engine"
	"monopolysim/internal/lobby"
	"monopolysim/internal/qrcode"
	"monopolysim/internal/report"
	"monopolysim/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("config: %v", err)
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		if cat, err = catalog.Load(cfg.Catalog); err != nil {
			config.Exitf("catalog: %v", err)
		}
	}
	if cfg.DumpCatalog {
		out, err := cat.Marshal()
		if err != nil {
			config.Exitf("catalog: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	names, err := seat(cfg)
	if err != nil {
		config.Exitf("lobby: %v", err)
	}

	rng, seed, err := engine.NewRand(cfg.Seed)
	if err != nil {
		config.Exitf("seed: %v", err)
	}
	setup := cat.Setup()
	setup.MaxHops = cfg.Hops(cat.MaxHops)
	sim := engine.NewSimulation(names, setup, rng)
	sim.Seed = seed

	var sinks engine.MultiSink
	narrator := report.NewNarrator(os.Stdout)
	if !cfg.Quiet {
		sinks = append(sinks, narrator)
	}
	var hub *server.Hub
	if cfg.WatchAddr != "" {
		hub = server.NewHub()
		hub.Start(names, cfg.Turns, seed, sim.Board.Spaces())
		sinks = append(sinks, hub)
	}

	summary, err := sim.Run(cfg.Turns, sinks)
	if err != nil {
		if hub != nil {
			hub.Fail(err)
		}
		config.Exitf("simulation: %v", err)
	}
	if err := narrator.Err(); err != nil {
		config.Exitf("narration: %v", err)
	}
	if err := report.WriteTally(os.Stdout, summary); err != nil {
		config.Exitf("tally: %v", err)
	}
	if !cfg.Quiet {
		fmt.Println()
		if err := report.WriteGroups(os.Stdout, summary); err != nil {
			config.Exitf("tally: %v", err)
		}
	}

	if hub == nil {
		return
	}
	hub.Finish(summary)
	if err := watch(cfg.WatchAddr, hub); err != nil {
		log.Fatalf("feed error: %v", err)
	}
}

func seat(cfg config.Config) ([]string, error) {
	lob, err := lobby.NewLobby(lobby.DefaultMinPlayers, lobby.DefaultMaxPlayers)
	if err != nil {
		return nil, err
	}
	if len(cfg.Names) == 0 {
		if err := lob.SeatDefaults(cfg.Players); err != nil {
			return nil, err
		}
		return lob.Names()
	}
	for _, name := range cfg.Names {
		if err := lob.Seat(name); err != nil {
			return nil, err
		}
	}
	return lob.Names()
}

// watch serves the finished run until interrupted.
func watch(addr string, hub *server.Hub) error {
	sub, err := fs.Sub(static, "web/static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}

	url := viewerURL(addr)
	log.Printf("run %s: open %s to watch, Ctrl-C to quit", hub.RunID(), url)
	if code, err := qrcode.Terminal(url); err == nil {
		fmt.Print(code)
	} else {
		log.Printf("qr code: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(addr, hub, sub).Start(ctx)
}

func viewerURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
