// Package api serves the catalog over a read-only, paginated HTTP API.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/store"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Catalog is the read side of the reference data store.
type Catalog interface {
	ListSets(ctx context.Context, limit, offset int) ([]catalog.Set, error)
	CountSets(ctx context.Context) (int, error)
	GetSet(ctx context.Context, setID string) (*catalog.Set, error)
	GetSetByPTCGOCode(ctx context.Context, code string) (*catalog.Set, error)
	ListCards(ctx context.Context, filter store.CardFilter, limit, offset int) ([]catalog.Card, error)
	CountCards(ctx context.Context, filter store.CardFilter) (int, error)
	GetCard(ctx context.Context, cardID string) (*catalog.Card, error)
}

type Server struct {
	catalog Catalog
	logger  *slog.Logger
	now     func() time.Time
	handler http.Handler
}

func NewServer(c Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		catalog: c,
		logger:  logger,
		now:     time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /sets", s.handleListSets)
	mux.HandleFunc("GET /sets/id/{setId}", s.handleGetSet)
	mux.HandleFunc("GET /sets/code/{ptcgoCode}", s.handleGetSetByCode)
	mux.HandleFunc("GET /cards", s.handleListCards)
	mux.HandleFunc("GET /cards/id/{cardId}", s.handleGetCard)
	mux.HandleFunc("GET /cards/set/{setId}", s.handleListCardsBySet)
	mux.HandleFunc("/", s.handleNotFound)

	s.handler = s.withRequestID(s.withAccessLog(withCORS(s.withRecover(mux))))
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()
	s.logger.Info("query service listening", "addr", listener.Addr().String())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	s.logger.Info("query service stopped")
	return nil
}
