// Package routes declares HTTP routes together with their OpenAPI operations
// and registers both in one pass.
package routes

import (
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
// Routes without an OpenAPI operation are registered but left out of the
// document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
