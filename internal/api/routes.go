package api

import (
	"net/http"

	"github.com/tubular-ci/tubular-web/internal/config"
	"github.com/tubular-ci/tubular-web/internal/paths"
	"github.com/tubular-ci/tubular-web/pkg/openapi"
	"github.com/tubular-ci/tubular-web/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) error {
	pathsHandler := paths.NewHandler(domain.Paths, runtime.Logger, runtime.MaxBodySize)

	spec.Components.AddSchemas(paths.Spec.Schemas())
	spec.Components.AddResponses(paths.Spec.Responses())

	return routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		pathsHandler.Routes(),
	)
}
