package main

import (
	"net/http"
	"time"

	"github.com/tubular-ci/tubular-web/internal/config"
	"github.com/tubular-ci/tubular-web/internal/server"
	"github.com/tubular-ci/tubular-web/pkg/middleware"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime := NewRuntime(cfg)

	modules, err := NewModules(runtime, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(runtime)
	modules.Mount(router)

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		runtime: runtime,
		modules: modules,
		http:    server.New(&cfg.Server, handler(router), runtime.Logger),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems, waiting at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}

func handler(router http.Handler) http.Handler {
	return middleware.TrimSlash()(router)
}
