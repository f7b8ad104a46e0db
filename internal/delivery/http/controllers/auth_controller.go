package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/delivery/http/middleware"
	"littlemaestros/internal/domain"
)

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AuthStatusResponse is the response body for auth endpoints.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

type AuthController struct {
	Logger     *slog.Logger
	Service    domain.AuthService
	SessionTTL time.Duration
	Secure     bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, sessionTTL time.Duration, secure bool) *AuthController {
	return &AuthController{
		Logger:     logger,
		Service:    svc,
		SessionTTL: sessionTTL,
		Secure:     secure,
	}
}

// Login godoc
// @Summary Admin login
// @Description Checks the shared admin password and, on success, sets the HttpOnly session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin password"
// @Success 200 {object} helpers.APIResponse "data contains {authenticated: true}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "admin password not configured")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, AuthStatusResponse{Authenticated: true})
}

// Logout godoc
// @Summary Admin logout
// @Description Clears the admin session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {authenticated: false}"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, AuthStatusResponse{Authenticated: false})
}

// Status godoc
// @Summary Admin session status
// @Description Reports whether the request carries a valid admin session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {authenticated}"
// @Router /api/auth/status [get]
func (c *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		authenticated = c.Service.Verify(cookie.Value)
	}
	h.WriteJSONSuccess(w, http.StatusOK, AuthStatusResponse{Authenticated: authenticated})
}
