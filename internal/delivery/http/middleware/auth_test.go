package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	validToken string
}

func (f *fakeAuthService) Login(ctx context.Context, password string) (string, error) {
	return f.validToken, nil
}

func (f *fakeAuthService) Verify(token string) bool {
	return token == f.validToken
}

func requireAdminRequest(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	handler := RequireAdmin(&fakeAuthService{validToken: "good-token"})(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sessions", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, called
}

func TestRequireAdminMissingCookie(t *testing.T) {
	rec, called := requireAdminRequest(t, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "not authenticated")
}

func TestRequireAdminInvalidToken(t *testing.T) {
	rec, called := requireAdminRequest(t, &http.Cookie{Name: SessionCookieName, Value: "stale-token"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "invalid or expired session")
}

func TestRequireAdminEmptyCookie(t *testing.T) {
	rec, called := requireAdminRequest(t, &http.Cookie{Name: SessionCookieName, Value: ""})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAdminValidToken(t *testing.T) {
	rec, called := requireAdminRequest(t, &http.Cookie{Name: SessionCookieName, Value: "good-token"})

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}
