package api

import (
	"log/slog"

	"github.com/tubular-ci/tubular-web/internal/config"
)

// Runtime holds the settings and services shared by API handlers.
type Runtime struct {
	Logger      *slog.Logger
	MaxBodySize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, logger *slog.Logger) *Runtime {
	return &Runtime{
		Logger:      logger.With("module", "api"),
		MaxBodySize: cfg.API.MaxBodySizeBytes(),
	}
}
