// Package app provides the frontend shell module with embedded templates and
// assets. Client-side navigation is driven by the location hash, resolved
// through the paths API.
package app

import (
	"embed"
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/module"
	"github.com/tubular-ci/tubular-web/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

var publicFiles = []string{
	"site.webmanifest",
}

var views = []web.ViewDef{
	{Route: "/{$}", Template: "home.html", Title: "Home", Bundle: "app"},
}

var errorViews = []web.ViewDef{
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
}

// NewModule creates the app module configured for the given base path.
// apiBase is the mount point of the JSON API, read by the bundle at runtime.
func NewModule(basePath, apiBase string) (*module.Module, error) {
	allViews := append(views, errorViews...)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		allViews,
	)
	if err != nil {
		return nil, err
	}

	router := buildRouter(ts, apiBase)
	return module.New(basePath, router), nil
}

func buildRouter(ts *web.TemplateSet, apiBase string) http.Handler {
	notFound := errorViews[0]
	notFound.Data = apiBase

	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(
		"app.html",
		notFound,
		http.StatusNotFound,
	))

	for _, view := range views {
		view.Data = apiBase
		r.HandleFunc("GET "+view.Route, ts.PageHandler("app.html", view))
	}

	r.Handle("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
