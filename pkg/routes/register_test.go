package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tubular-ci/tubular-web/pkg/openapi"
	"github.com/tubular-ci/tubular-web/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test", "1.0.0")

	group := routes.Group{
		Prefix: "/paths",
		Tags:   []string{"Paths"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/parse", Handler: write("parse"), OpenAPI: &openapi.Operation{Summary: "Parse"}},
			{Method: "POST", Pattern: "/format", Handler: write("format")},
		},
		Children: []routes.Group{
			{
				Prefix: "/debug",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/echo", Handler: write("echo"), OpenAPI: &openapi.Operation{Tags: []string{"Debug"}}},
				},
			},
		},
	}

	if err := routes.Register(mux, "/api", spec, group); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/paths/parse", "parse"},
		{"POST", "/paths/format", "format"},
		{"GET", "/paths/debug/echo", "echo"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	parse := spec.Paths["/api/paths/parse"]
	if parse == nil || parse.Get == nil {
		t.Fatal("parse operation missing from spec")
	}
	if len(parse.Get.Tags) != 1 || parse.Get.Tags[0] != "Paths" {
		t.Errorf("Tags = %v, want inherited [Paths]", parse.Get.Tags)
	}

	if _, ok := spec.Paths["/api/paths/format"]; ok {
		t.Error("route without operation added to spec")
	}

	echo := spec.Paths["/api/paths/debug/echo"]
	if echo == nil || echo.Get.Tags[0] != "Debug" {
		t.Error("child group operation missing or tags overwritten")
	}
}

func TestRegister_NilSpec(t *testing.T) {
	mux := http.NewServeMux()

	group := routes.Group{
		Prefix: "/paths",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/parse", Handler: write("ok"), OpenAPI: &openapi.Operation{}},
		},
	}

	if err := routes.Register(mux, "/api", nil, group); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/paths/parse", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
