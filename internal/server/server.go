// Package server exposes the puzzle engine and player store over HTTP as
// a small JSON API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/unquote/unquote/internal/config"
	"github.com/unquote/unquote/internal/puzzlegen"
	"github.com/unquote/unquote/internal/quotesource"
	"github.com/unquote/unquote/internal/store"
)

// Server wires the quote source, puzzle generator, and player store
// behind an HTTP handler.
type Server struct {
	cfg     config.Config
	quotes  *quotesource.Source
	gen     *puzzlegen.Generator
	store   *store.Store
	httpSrv *http.Server
}

// New builds a Server. Routes are registered but the listener is not
// started until Start is called.
func New(cfg config.Config, quotes *quotesource.Source, gen *puzzlegen.Generator, st *store.Store) *Server {
	return &Server{cfg: cfg, quotes: quotes, gen: gen, store: st}
}

// Start builds the route table and begins serving. It blocks until the
// server stops, returning http.ErrServerClosed on a clean shutdown.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	s.routes(mux)

	handler := recoveryMiddleware(loggingMiddleware(mux))

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	slog.Info("starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health/live", s.handleHealthLive)
	mux.HandleFunc("GET /health/ready", s.handleHealthReady)
	mux.HandleFunc("GET /game/today", s.handleGameToday)
	mux.HandleFunc("GET /game/{date}", s.handleGameByDate)
	mux.HandleFunc("POST /game/{id}/check", s.handleGameCheck)
	mux.HandleFunc("POST /players", s.handlePlayersRegister)
	mux.HandleFunc("GET /players/{claim_code}/stats", s.handlePlayerStats)
}
