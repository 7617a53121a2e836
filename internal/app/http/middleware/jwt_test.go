package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-app/config"
)

func signToken(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "curator",
		"role": role,
		"exp":  exp.Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func setupGuardRouter(t *testing.T) (*gin.Engine, *http.Header) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
	config.ADMIN_TOKEN = "backend-admin-token"

	var forwarded http.Header
	r := gin.New()
	guarded := r.Group("/")
	guarded.Use(AdminProxyGuard())
	guarded.GET("/api/v1/*path", func(c *gin.Context) {
		forwarded = c.Request.Header.Clone()
		c.Status(http.StatusOK)
	})
	return r, &forwarded
}

func TestGuardSwapsSessionTokenForAdminCredential(t *testing.T) {
	r, forwarded := setupGuardRouter(t)
	session := signToken(t, config.JWT_SECRET, "admin", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	req.Header.Set("Authorization", "Bearer "+session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer backend-admin-token", forwarded.Get("Authorization"))
}

func TestGuardIgnoresPublicPaths(t *testing.T) {
	r, forwarded := setupGuardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, forwarded.Get("Authorization"))
}

func TestGuardRejectsMissingToken(t *testing.T) {
	r, _ := setupGuardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	r, _ := setupGuardRouter(t)
	session := signToken(t, config.JWT_SECRET, "admin", time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	req.Header.Set("Authorization", "Bearer "+session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsWrongSignature(t *testing.T) {
	r, _ := setupGuardRouter(t)
	session := signToken(t, "other-secret", "admin", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	req.Header.Set("Authorization", "Bearer "+session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsNonAdminRole(t *testing.T) {
	r, _ := setupGuardRouter(t)
	session := signToken(t, config.JWT_SECRET, "viewer", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	req.Header.Set("Authorization", "Bearer "+session)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuardNeverLeaksAdminTokenOnRejection(t *testing.T) {
	r, _ := setupGuardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artworks", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), config.ADMIN_TOKEN)
}
