package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// ReadHeaderTimeout is the timeout for reading request headers.
const ReadHeaderTimeout = 5 * time.Second

// Server manages an HTTP server lifecycle.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	onServeErr func()

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a new Server with the given name, handler, and config.
// It sets config defaults, validates the config, and creates the underlying http.Server.
// The onServeErr callback, if non-nil, is called when the background Serve goroutine encounters a fatal error.
func NewServer(name string, handler http.Handler, cfg Config, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		onServeErr: onServeErr,
	}, nil
}

// Name returns the listener name.
func (s *Server) Name() string {
	return s.name
}

// Addr returns the bound address once started, which resolves a ":0" port,
// and the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.config.Address
}

// Start begins listening on TCP and serves HTTP requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	ln, err := listenCfg.Listen(ctx, "tcp", s.config.Address)
	if err != nil {
		slog.Error("failed to listen",
			slog.String("name", s.name), slog.String("address", s.config.Address), slog.String("error", err.Error()))

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	slog.Info("starting HTTP listener", slog.String("name", s.name), slog.String("address", ln.Addr().String()))

	go func() {
		serveErr := s.server.Serve(ln)
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("HTTP listener error", slog.String("name", s.name), slog.String("error", serveErr.Error()))

			if s.onServeErr != nil {
				s.onServeErr()
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info("stopping HTTP listener", slog.String("name", s.name))

	err := s.server.Shutdown(ctx)
	if err != nil {
		slog.Error("shutdown failed", slog.String("name", s.name), slog.String("error", err.Error()))

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
