package paths

import "github.com/tubular-ci/tubular-web/pkg/openapi"

type spec struct {
	ParseQuery *openapi.Operation
	Parse      *openapi.Operation
	Format     *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the paths endpoints.
var Spec = spec{
	ParseQuery: &openapi.Operation{
		Summary:     "Parse hash path",
		Description: "Splits a hash path such as #search?q=cats into its route and arguments. The path must be URL-encoded.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "string", "Hash path to parse; may be empty", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Parsed location", "Location"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Parse: &openapi.Operation{
		Summary:     "Parse hash path from body",
		Description: "Same as the query form, without URL-encoding the path",
		RequestBody: openapi.RequestBodyJSON("ParseRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Parsed location", "Location"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Format: &openapi.Operation{
		Summary:     "Format hash path",
		Description: "Builds a hash path from a route and arguments. Arguments are written in sorted key order.",
		RequestBody: openapi.RequestBodyJSON("Location", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Formatted path", "FormatResult"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
}

// Schemas returns the component schemas referenced by Spec.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Location": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"route": {Type: "string", Description: "Route with its leading marker removed", Example: "search"},
				"args": {
					Type:                 "object",
					Description:          "Argument values by name",
					AdditionalProperties: &openapi.Property{Type: "string"},
				},
			},
			Required: []string{"route", "args"},
		},
		"ParseRequest": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"path": {Type: "string", Example: "#search?q=cats&page=2"},
			},
			Required: []string{"path"},
		},
		"FormatResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"path": {Type: "string", Example: "#search?page=2&q=cats"},
			},
			Required: []string{"path"},
		},
	}
}

// Responses returns the shared error responses referenced by Spec.
func (spec) Responses() map[string]*openapi.Response {
	errorContent := map[string]*openapi.MediaType{
		"application/json": {Schema: &openapi.Schema{
			Type: "object",
			Properties: map[string]*openapi.Property{
				"error": {Type: "string"},
			},
		}},
	}
	return map[string]*openapi.Response{
		"BadRequest":      {Description: "Malformed request", Content: errorContent},
		"PayloadTooLarge": {Description: "Request body exceeds the configured limit", Content: errorContent},
	}
}
