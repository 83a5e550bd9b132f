// Package config holds the command line configuration of the simulator.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"monopolysim/internal/engine"
	"monopolysim/internal/lobby"
)

const (
	MinTurns = 1
	MaxTurns = 500
)

// Config is read from MONOPOLY_SIM_* variables, then overridden by flags.
type Config struct {
	Players     int      `env:"MONOPOLY_SIM_PLAYERS"      envDefault:"4"`
	Turns       int      `env:"MONOPOLY_SIM_TURNS"        envDefault:"30"`
	Seed        uint64   `env:"MONOPOLY_SIM_SEED"`
	Names       []string `env:"MONOPOLY_SIM_NAMES"        envSeparator:","`
	Catalog     string   `env:"MONOPOLY_SIM_CATALOG"`
	Quiet       bool     `env:"MONOPOLY_SIM_QUIET"`
	MaxHops     int      `env:"MONOPOLY_SIM_MAX_HOPS"`
	WatchAddr   string   `env:"MONOPOLY_SIM_WATCH_ADDR"`
	DumpCatalog bool     `env:"MONOPOLY_SIM_DUMP_CATALOG"`
}

// ParseConfig parses environment variables and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	names := strings.Join(cfg.Names, ",")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players (2-8)")
	fs.IntVar(&cfg.Turns, "turns", cfg.Turns, "number of turns (1-500)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&names, "names", names, "comma separated player names")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "path to a YAML board and deck catalog")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "only print the final tally")
	fs.IntVar(&cfg.MaxHops, "max-hops", cfg.MaxHops, "landings allowed per movement before aborting (0 uses the catalog value)")
	fs.StringVar(&cfg.WatchAddr, "watch", cfg.WatchAddr, "serve the run to spectators on this address, e.g. :8080")
	fs.BoolVar(&cfg.DumpCatalog, "dump-catalog", cfg.DumpCatalog, "print the catalog as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Names = splitNames(names)
	return cfg, nil
}

// Validate checks ranges the simulation expects.
func (c Config) Validate() error {
	var errs []error
	if c.Players < lobby.DefaultMinPlayers || c.Players > lobby.DefaultMaxPlayers {
		errs = append(errs, fmt.Errorf("players must be between %d and %d, got %d",
			lobby.DefaultMinPlayers, lobby.DefaultMaxPlayers, c.Players))
	}
	if c.Turns < MinTurns || c.Turns > MaxTurns {
		errs = append(errs, fmt.Errorf("turns must be between %d and %d, got %d", MinTurns, MaxTurns, c.Turns))
	}
	if c.MaxHops < 0 {
		errs = append(errs, fmt.Errorf("max hops must not be negative, got %d", c.MaxHops))
	}
	if len(c.Names) > 0 && len(c.Names) != c.Players {
		errs = append(errs, fmt.Errorf("got %d names for %d players", len(c.Names), c.Players))
	}
	return errors.Join(errs...)
}

// Hops returns the hop limit to use given the catalog's own limit.
func (c Config) Hops(catalogHops int) int {
	if c.MaxHops > 0 {
		return c.MaxHops
	}
	if catalogHops > 0 {
		return catalogHops
	}
	return engine.DefaultMaxHops
}

func splitNames(s string) []string {
	var out []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Exitf prints a formatted message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
