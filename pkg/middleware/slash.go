package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				redirect(w, r, localPath(strings.TrimSuffix(r.URL.Path, "/")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// localPath collapses leading slashes and backslashes to a single "/" so the
// target cannot be read as a protocol-relative URL on another host.
func localPath(p string) string {
	return "/" + strings.TrimLeft(p, `/\`)
}

// redirect keeps the query string. Requests other than GET and HEAD get a 308
// so clients resend the body to the canonical path.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	status := http.StatusMovedPermanently
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusPermanentRedirect
	}
	http.Redirect(w, r, target, status)
}
