package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment
// and falls back to a native ServeMux for everything else.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the fallback mux.
func (rt *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	rt.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix, replacing any module already
// mounted there.
func (rt *Router) Mount(m *Module) {
	rt.modules[m.prefix] = m
}

// ServeHTTP routes to a module or the native mux. Paths are matched as-is;
// wrap the router in middleware.TrimSlash to canonicalize trailing slashes.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m, ok := rt.modules[firstSegment(r.URL.Path)]; ok {
		m.Serve(w, r)
		return
	}

	rt.native.ServeHTTP(w, r)
}

func firstSegment(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	if i := strings.IndexByte(path[1:], '/'); i >= 0 {
		return path[:i+1]
	}
	return path
}
