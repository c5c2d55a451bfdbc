// Package api assembles the JSON API module: domain systems, their routes and
// the OpenAPI document describing them.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tubular-ci/tubular-web/internal/config"
	"github.com/tubular-ci/tubular-web/pkg/middleware"
	"github.com/tubular-ci/tubular-web/pkg/module"
	"github.com/tubular-ci/tubular-web/pkg/openapi"
)

// NewModule creates the API module mounted at cfg.API.BasePath. cfg must be
// finalized.
func NewModule(cfg *config.Config, logger *slog.Logger) (*module.Module, error) {
	runtime := NewRuntime(cfg, logger)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, spec, runtime, domain, cfg); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
