package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Server serves the spectator page and the websocket feed of one run.
type Server struct {
	handlers *Handlers
	addr     string
	static   fs.FS
}

// New builds a server. static is the root of the viewer page files.
func New(addr string, hub *Hub, static fs.FS) *Server {
	return &Server{
		handlers: NewHandlers(hub),
		addr:     addr,
		static:   static,
	}
}

// Handler returns the routes of the feed.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(s.static)))
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/summary", s.handlers.HandleSummary)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	return mux
}

// Start serves until ctx is cancelled, then shuts down and stops the hub.
func (s *Server) Start(ctx context.Context) error {
	hub := s.handlers.Hub
	go hub.Run()
	defer hub.Stop()

	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("spectator feed listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve feed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown feed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve feed: %w", err)
	}
	return nil
}
