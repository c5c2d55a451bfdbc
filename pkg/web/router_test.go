package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tubular-ci/tubular-web/pkg/web"
)

func TestRouter_Fallback(t *testing.T) {
	tests := []struct {
		name        string
		setFallback bool
		path        string
		wantStatus  int
		wantBody    string
	}{
		{"matched", true, "/exists", http.StatusOK, "exists"},
		{"fallback", true, "/missing", http.StatusGone, "fallback"},
		{"no fallback", false, "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := web.NewRouter()
			r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
				w.Write([]byte("exists"))
			})
			if tt.setFallback {
				r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
					w.WriteHeader(http.StatusGone)
					w.Write([]byte("fallback"))
				})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
