// Package docs provides the interactive API documentation module using Scalar UI.
package docs

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/module"
	"github.com/tubular-ci/tubular-web/pkg/web"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index.html").Parse(indexHTML))

type indexData struct {
	Title   string
	SpecURL string
}

// NewModule creates the documentation module at basePath. The page loads the
// OpenAPI document from specURL.
func NewModule(basePath, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, indexData{Title: title, SpecURL: specURL}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", web.ServeEmbeddedFile(buf.Bytes(), "text/html; charset=utf-8"))

	return module.New(basePath, mux), nil
}
