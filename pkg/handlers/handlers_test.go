package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tubular-ci/tubular-web/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{
			"ok with map",
			http.StatusOK,
			map[string]string{"route": "home"},
			http.StatusOK,
			`{"route":"home"}`,
		},
		{
			"ok with struct",
			http.StatusOK,
			struct {
				Path string `json:"path"`
			}{"#home"},
			http.StatusOK,
			`{"path":"#home"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handlers.RespondJSON(w, tt.status, tt.data)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			body, _ := io.ReadAll(resp.Body)
			if strings.TrimSpace(string(body)) != tt.wantBody {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers.RespondError(w, logger, http.StatusBadRequest, errors.New("path required"))

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if result["error"] != "path required" {
		t.Errorf("error = %q, want %q", result["error"], "path required")
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Path string `json:"path"`
	}

	tests := []struct {
		name     string
		body     string
		maxBytes int64
		wantErr  error
		wantPath string
	}{
		{"valid", `{"path":"#home"}`, 1024, nil, "#home"},
		{"no limit", `{"path":"#runs?id=1"}`, 0, nil, "#runs?id=1"},
		{"malformed", `{"path":`, 1024, handlers.ErrInvalidJSON, ""},
		{"too large", `{"path":"#` + strings.Repeat("a", 64) + `"}`, 16, handlers.ErrBodyTooLarge, ""},
		{"trailing garbage", `{"path":"#a"}xyz`, 1024, handlers.ErrInvalidJSON, ""},
		{"second value", `{"path":"#a"} {"path":"#b"}`, 1024, handlers.ErrInvalidJSON, ""},
		{"trailing whitespace", "{\"path\":\"#a\"}\n", 1024, nil, "#a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var got payload
			err := handlers.DecodeJSON(w, req, tt.maxBytes, &got)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}

			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}
