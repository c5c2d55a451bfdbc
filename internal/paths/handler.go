package paths

import (
	"log/slog"
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/handlers"
	"github.com/tubular-ci/tubular-web/pkg/hashpath"
	"github.com/tubular-ci/tubular-web/pkg/routes"
)

type Handler struct {
	sys     System
	logger  *slog.Logger
	maxBody int64
}

// NewHandler creates the HTTP handler for the paths system. Request bodies
// larger than maxBody bytes are rejected.
func NewHandler(sys System, logger *slog.Logger, maxBody int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger,
		maxBody: maxBody,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/paths",
		Tags:        []string{"Paths"},
		Description: "Hash path parsing for frontend routing",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/parse", Handler: h.ParseQuery, OpenAPI: Spec.ParseQuery},
			{Method: "POST", Pattern: "/parse", Handler: h.Parse, OpenAPI: Spec.Parse},
			{Method: "POST", Pattern: "/format", Handler: h.Format, OpenAPI: Spec.Format},
		},
	}
}

// ParseQuery parses the path query parameter. The parameter must be present
// but may be empty.
func (h *Handler) ParseQuery(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	if !values.Has("path") {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrPathRequired), ErrPathRequired)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.Parse(values.Get("path")))
}

func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := handlers.DecodeJSON(w, r, h.maxBody, &req); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.Parse(req.Path))
}

func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	var loc hashpath.Location
	if err := handlers.DecodeJSON(w, r, h.maxBody, &loc); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FormatResult{Path: h.sys.Format(loc)})
}
