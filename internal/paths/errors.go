package paths

import (
	"errors"
	"net/http"

	"github.com/tubular-ci/tubular-web/pkg/handlers"
)

// ErrPathRequired indicates the path query parameter was not supplied.
var ErrPathRequired = errors.New("path query parameter required")

// MapHTTPStatus maps request errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, handlers.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrPathRequired), errors.Is(err, handlers.ErrInvalidJSON):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
