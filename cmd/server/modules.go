package main

import (
	"net/http"

	"github.com/tubular-ci/tubular-web/internal/api"
	"github.com/tubular-ci/tubular-web/internal/config"
	"github.com/tubular-ci/tubular-web/pkg/middleware"
	"github.com/tubular-ci/tubular-web/pkg/module"
	"github.com/tubular-ci/tubular-web/web/app"
	"github.com/tubular-ci/tubular-web/web/docs"
)

type Modules struct {
	API  *module.Module
	App  *module.Module
	Docs *module.Module
}

func NewModules(runtime *Runtime, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, runtime.Logger)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule("/app", cfg.API.BasePath)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(runtime.Logger.With("module", "app")))

	docsModule, err := docs.NewModule("/docs", cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}
	docsModule.Use(middleware.Logger(runtime.Logger.With("module", "docs")))

	return &Modules{
		API:  apiModule,
		App:  appModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Docs)
}

func buildRouter(runtime *Runtime) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/app", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
