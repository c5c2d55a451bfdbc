package api

import "github.com/tubular-ci/tubular-web/internal/paths"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Paths paths.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Paths: paths.New(runtime.Logger),
	}
}
