package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"moviehub/config"
	"moviehub/database"
	"moviehub/logging"
	"moviehub/repository"
)

// Server is a bound, ready to serve API server.
type Server struct {
	cfg      *config.Config
	db       *database.DB
	listener net.Listener
	http     *http.Server
}

// New opens the database, ensures the schema and binds the listen address.
// Nothing is bound when the schema cannot be initialized.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	handler := NewRouter(Stores{
		Movies:   repository.NewMovieRepository(db),
		Seasons:  repository.NewSeasonRepository(db),
		Contacts: repository.NewContactMessageRepository(db),
	}, Options{
		FrontendURL:      cfg.FrontendURL,
		ContactRateLimit: cfg.ContactRateLimit,
		Started:          time.Now(),
	})

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	return &Server{
		cfg:      cfg,
		db:       db,
		listener: listener,
		http: &http.Server{
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Addr is the bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve handles requests until ctx is cancelled, then shuts down gracefully
// and closes the database.
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		if err := s.db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	logging.Info().
		Str("addr", s.Addr().String()).
		Str("env", s.cfg.Env).
		Str("frontend_url", s.cfg.FrontendURL).
		Msg("Server running")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-errCh
	logging.Info().Msg("Server stopped")
	return nil
}

// Run starts the server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	srv, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}
