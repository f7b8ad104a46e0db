package middleware

import (
	"net/http"
	"strings"
)

// The admin dashboard sends JSON bodies and relies on the session cookie,
// so credentials are always allowed and the origin is echoed back rather
// than wildcarded.
const (
	corsMethods     = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders     = "Content-Type, Accept"
	corsPreflightTTL = "86400"
)

type originSet map[string]struct{}

func newOriginSet(origins []string) originSet {
	set := make(originSet, len(origins))
	for _, o := range origins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o != "" {
			set[o] = struct{}{}
		}
	}
	return set
}

func (s originSet) contains(origin string) bool {
	_, ok := s[origin]
	return ok
}

// CORS lets the configured site origins call the API from the browser.
// Requests from unlisted origins pass through without CORS headers, and
// every OPTIONS request is answered with 204 before it reaches the router.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := newOriginSet(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed.contains(origin) {
			hdr := w.Header()
			hdr.Set("Access-Control-Allow-Origin", origin)
			hdr.Set("Access-Control-Allow-Credentials", "true")
			hdr.Add("Vary", "Origin")
			if r.Method == http.MethodOptions {
				hdr.Set("Access-Control-Allow-Methods", corsMethods)
				hdr.Set("Access-Control-Allow-Headers", corsHeaders)
				hdr.Set("Access-Control-Max-Age", corsPreflightTTL)
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
