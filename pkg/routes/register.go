package routes

import (
	"fmt"
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/openapi"
)

// Register adds every route in groups to mux and, when spec is non-nil, to
// the OpenAPI document. Mux patterns are relative to the module; document
// paths are prefixed with basePath. Operations without tags inherit the tags
// of their group.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) error {
	for _, g := range groups {
		if err := register(mux, basePath, spec, "", g); err != nil {
			return err
		}
	}
	return nil
}

func register(mux *http.ServeMux, basePath string, spec *openapi.Spec, parent string, g Group) error {
	prefix := parent + g.Prefix

	for _, route := range g.Routes {
		pattern := prefix + route.Pattern
		mux.HandleFunc(route.Method+" "+pattern, route.Handler)

		if spec == nil || route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		if err := spec.AddOperation(basePath+pattern, route.Method, op); err != nil {
			return fmt.Errorf("route %s %s: %w", route.Method, pattern, err)
		}
	}

	for _, child := range g.Children {
		if err := register(mux, basePath, spec, prefix, child); err != nil {
			return err
		}
	}
	return nil
}
