package middleware

import (
	"net/http"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

// SessionCookieName is the HttpOnly cookie carrying the admin session token.
const SessionCookieName = "admin_session"

// RequireAdmin returns a wrapper that validates the admin session cookie.
// If the cookie is missing or its token invalid, it responds with 401 and
// does not call next.
func RequireAdmin(auth domain.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not authenticated")
				return
			}
			if !auth.Verify(cookie.Value) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
				return
			}
			next(w, r)
		}
	}
}
