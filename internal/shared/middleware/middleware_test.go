package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buslink/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret, tokenType, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "b6a0b1f0-0000-0000-0000-000000000001",
		"email":   "clerk@example.com",
		"role":    role,
		"type":    tokenType,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authTestRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthWithConfig(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	engine.GET("/protected", handlers...)
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	cfg := config.Load()

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := doRequest(authTestRouter(cfg), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		w := doRequest(authTestRouter(cfg), "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		w := doRequest(authTestRouter(cfg), "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		token := signToken(t, "some-other-secret", "access", "CLERK")
		w := doRequest(authTestRouter(cfg), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token cannot access protected routes", func(t *testing.T) {
		token := signToken(t, cfg.JWT.Secret, "refresh", "CLERK")
		w := doRequest(authTestRouter(cfg), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid access token passes", func(t *testing.T) {
		token := signToken(t, cfg.JWT.Secret, "access", "CLERK")
		w := doRequest(authTestRouter(cfg), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CLERK")
	})
}

func TestRequireRoles(t *testing.T) {
	cfg := config.Load()

	t.Run("matching role passes", func(t *testing.T) {
		engine := authTestRouter(cfg, RequireRoles("ADMIN", "MANAGER"))
		token := signToken(t, cfg.JWT.Secret, "access", "MANAGER")
		w := doRequest(engine, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		engine := authTestRouter(cfg, RequireRoles("ADMIN", "MANAGER"))
		token := signToken(t, cfg.JWT.Secret, "access", "DRIVER")
		w := doRequest(engine, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin gate rejects everyone else", func(t *testing.T) {
		engine := authTestRouter(cfg, RequireAdmin())
		token := signToken(t, cfg.JWT.Secret, "access", "CLERK")
		w := doRequest(engine, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)

		token = signToken(t, cfg.JWT.Secret, "access", "ADMIN")
		w = doRequest(engine, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
