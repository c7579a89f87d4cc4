package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cbodonnell/reaction/pkg/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the session metrics over HTTP.
type Server struct {
	server   *http.Server
	listener net.Listener
	logger   *log.Logger
}

type NewServerOptions struct {
	// Addr is the listen address, e.g. "localhost:9091".
	Addr string
	// Gatherer provides the metrics to serve.
	Gatherer prometheus.Gatherer
}

// NewRouter returns the routes served by the metrics server.
func NewRouter(gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return router
}

// NewServer binds the listen address so that startup errors surface immediately.
func NewServer(opts NewServerOptions) (*Server, error) {
	if opts.Gatherer == nil {
		return nil, errors.New("gatherer must not be nil")
	}
	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
	}
	return &Server{
		server: &http.Server{
			Handler:           NewRouter(opts.Gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: listener,
		logger:   log.Default().With("component", "metrics"),
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves until the server is stopped.
func (s *Server) Start() {
	s.logger.Info("Metrics server listening on %s", s.Addr())
	if err := s.server.Serve(s.listener); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			s.logger.Info("Metrics server closed")
			return
		}
		s.logger.Error("Metrics server error: %v", err)
	}
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down metrics server: %w", err)
	}
	return nil
}
