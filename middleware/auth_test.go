package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
	"github.com/Abinet16/Mulu-Asset-Managment-template/models"
	"github.com/Abinet16/Mulu-Asset-Managment-template/utils"
)

func setupKeys(t *testing.T) {
	t.Helper()
	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour
}

func identityEcho(t *testing.T, gotUserID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value("userID").(string); ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestExtractTokenPrecedence(t *testing.T) {
	setupKeys(t)

	// cookie, header and query all set; the cookie must win
	r := httptest.NewRequest(http.MethodGet, "/api/assets?token=query-token", nil)
	r.AddCookie(&http.Cookie{Name: config.AuthCookieName, Value: "cookie-token"})
	r.Header.Set("Authorization", "Bearer header-token")

	tok, ok := ExtractToken(r)
	require.True(t, ok)
	assert.Equal(t, "cookie-token", tok)

	// no cookie: header wins over query
	r = httptest.NewRequest(http.MethodGet, "/api/assets?token=query-token", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	tok, ok = ExtractToken(r)
	require.True(t, ok)
	assert.Equal(t, "header-token", tok)

	// query parameter is the last resort
	r = httptest.NewRequest(http.MethodGet, "/api/assets?token=query-token", nil)
	tok, ok = ExtractToken(r)
	require.True(t, ok)
	assert.Equal(t, "query-token", tok)

	r = httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	_, ok = ExtractToken(r)
	assert.False(t, ok)
}

func TestAuthMiddlewareUsesCookieExclusively(t *testing.T) {
	setupKeys(t)

	cookieToken, err := utils.GenerateJWT("U-cookie", "c@corp.io", "admin")
	require.NoError(t, err)
	headerToken, err := utils.GenerateJWT("U-header", "h@corp.io", "admin")
	require.NoError(t, err)

	var gotUserID string
	handler := AuthMiddleware(identityEcho(t, &gotUserID))

	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	r.AddCookie(&http.Cookie{Name: config.AuthCookieName, Value: cookieToken})
	r.Header.Set("Authorization", "Bearer "+headerToken)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "U-cookie", gotUserID)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	setupKeys(t)

	var gotUserID string
	handler := AuthMiddleware(identityEcho(t, &gotUserID))

	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
	assert.Empty(t, gotUserID)
}

func TestAuthMiddlewareExpiredVsInvalid(t *testing.T) {
	setupKeys(t)

	config.JWTExpiration = -time.Minute
	expired, err := utils.GenerateJWT("U-1", "a@corp.io", "admin")
	require.NoError(t, err)
	config.JWTExpiration = time.Hour

	var gotUserID string
	handler := AuthMiddleware(identityEcho(t, &gotUserID))

	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	r.AddCookie(&http.Cookie{Name: config.AuthCookieName, Value: expired})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")

	r = httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	r.AddCookie(&http.Cookie{Name: config.AuthCookieName, Value: "garbage.token.here"})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAdminOnly(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminOnly(ok)

	cases := []struct {
		role string
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleManager, http.StatusForbidden},
		{models.RoleTechnician, http.StatusForbidden},
		{models.RoleEmployee, http.StatusForbidden},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		ctx := context.WithValue(r.Context(), "userRole", tc.role)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r.WithContext(ctx))
		assert.Equal(t, tc.want, w.Code, "role %s", tc.role)
	}

	// no identity at all
	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admins only")
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(models.RoleAdmin, models.RoleTechnician)(ok)

	for role, want := range map[string]int{
		models.RoleAdmin:      http.StatusOK,
		models.RoleTechnician: http.StatusOK,
		models.RoleEmployee:   http.StatusForbidden,
	} {
		r := httptest.NewRequest(http.MethodPost, "/api/assets", nil)
		ctx := context.WithValue(r.Context(), "userRole", role)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r.WithContext(ctx))
		assert.Equal(t, want, w.Code, "role %s", role)
	}
}
