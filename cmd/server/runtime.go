package main

import (
	"log/slog"

	"github.com/tubular-ci/tubular-web/internal/config"
	"github.com/tubular-ci/tubular-web/pkg/lifecycle"
	"github.com/tubular-ci/tubular-web/pkg/logging"
)

// Runtime holds the process-wide services shared by every module.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging, nil),
	}
}
