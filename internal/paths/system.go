// Package paths exposes hash path parsing and formatting to the frontend
// over the JSON API.
package paths

import (
	"log/slog"

	"github.com/tubular-ci/tubular-web/pkg/hashpath"
)

// System parses and formats hash paths.
type System interface {
	// Parse splits path into its route and arguments. It never fails.
	Parse(path string) hashpath.Location

	// Format builds the hash path for loc.
	Format(loc hashpath.Location) string
}

type system struct {
	logger *slog.Logger
}

// New creates a paths system that traces results at debug level.
func New(logger *slog.Logger) System {
	return &system{logger: logger}
}

func (s *system) Parse(path string) hashpath.Location {
	loc := hashpath.ParseLocation(path)
	s.logger.Debug("path parsed",
		"path", path,
		"route", loc.Route,
		"args", len(loc.Args),
	)
	return loc
}

func (s *system) Format(loc hashpath.Location) string {
	path := loc.String()
	s.logger.Debug("path formatted",
		"route", loc.Route,
		"args", len(loc.Args),
		"path", path,
	)
	return path
}
