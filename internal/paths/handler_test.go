package paths_test

import (
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tubular-ci/tubular-web/internal/paths"
	"github.com/tubular-ci/tubular-web/pkg/hashpath"
	"github.com/tubular-ci/tubular-web/pkg/routes"
)

func newMux(t *testing.T, maxBody int64) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	h := paths.NewHandler(paths.New(logger), logger, maxBody)

	mux := http.NewServeMux()
	if err := routes.Register(mux, "/api", nil, h.Routes()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return mux
}

func decodeLocation(t *testing.T, rec *httptest.ResponseRecorder) hashpath.Location {
	t.Helper()
	var loc hashpath.Location
	if err := json.NewDecoder(rec.Body).Decode(&loc); err != nil {
		t.Fatalf("decode location: %v", err)
	}
	return loc
}

func TestParseQuery(t *testing.T) {
	mux := newMux(t, 1024)

	tests := []struct {
		name      string
		path      string
		wantRoute string
		wantArgs  map[string]string
	}{
		{"route only", "#home", "home", map[string]string{}},
		{"arguments", "#search?q=cats&page=2", "search", map[string]string{"q": "cats", "page": "2"}},
		{"empty path", "", "", map[string]string{}},
		{"question mark at start", "?a=1", "a=1", map[string]string{"a": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/paths/parse?path=" + url.QueryEscape(tt.path)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
			}

			loc := decodeLocation(t, rec)
			if loc.Route != tt.wantRoute {
				t.Errorf("route = %q, want %q", loc.Route, tt.wantRoute)
			}
			if !maps.Equal(loc.Args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", loc.Args, tt.wantArgs)
			}
		})
	}
}

func TestParseQuery_MissingPath(t *testing.T) {
	mux := newMux(t, 1024)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/paths/parse", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != paths.ErrPathRequired.Error() {
		t.Errorf("error = %q, want %q", body["error"], paths.ErrPathRequired.Error())
	}
}

func TestParse(t *testing.T) {
	mux := newMux(t, 1024)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantRoute  string
		wantArgs   map[string]string
	}{
		{"duplicate keys", `{"path":"#list?tag=a&tag=b"}`, http.StatusOK, "list", map[string]string{"tag": "b"}},
		{"bare flag", `{"path":"#item?flag"}`, http.StatusOK, "item", map[string]string{"flag": ""}},
		{"missing field parses empty", `{}`, http.StatusOK, "", map[string]string{}},
		{"malformed", `{"path":`, http.StatusBadRequest, "", nil},
		{"trailing data", `{"path":"#a"}xyz`, http.StatusBadRequest, "", nil},
		{"too large", `{"path":"#` + strings.Repeat("x", 2048) + `"}`, http.StatusRequestEntityTooLarge, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/paths/parse", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			loc := decodeLocation(t, rec)
			if loc.Route != tt.wantRoute {
				t.Errorf("route = %q, want %q", loc.Route, tt.wantRoute)
			}
			if !maps.Equal(loc.Args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", loc.Args, tt.wantArgs)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	mux := newMux(t, 1024)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPath   string
	}{
		{"route only", `{"route":"home"}`, http.StatusOK, "#home"},
		{"sorted arguments", `{"route":"search","args":{"q":"cats","page":"2"}}`, http.StatusOK, "#search?page=2&q=cats"},
		{"wrong type", `{"route":1}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/paths/format", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var result paths.FormatResult
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if result.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", result.Path, tt.wantPath)
			}
		})
	}
}
