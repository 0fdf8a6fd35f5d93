package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/models"
)

func newTestRouter(tokens *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authMW := AuthMiddleware(tokens)
	r.GET("/me", authMW, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetUserRole(c)})
	})
	r.GET("/admin", authMW, RequireRoles(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/analytics", authMW, RequireRoles(models.UserRoleAnalyst, models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	w := doRequest(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc") // не Bearer
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	token, err := tokens.Generate("user-1", "u@example.com", models.UserRoleUser)
	require.NoError(t, err)

	w := doRequest(r, "/me", token+"x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	token, err := tokens.Generate("user-1", "u@example.com", models.UserRoleUser)
	require.NoError(t, err)

	w := doRequest(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireRoles_UserForbiddenOnAdminRoute(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	token, err := tokens.Generate("user-1", "u@example.com", models.UserRoleUser)
	require.NoError(t, err)

	// Валидный токен, недостаточная роль: 403, не 401,
	// с кодом из каталога apperrors
	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireRoles_AdminAllowed(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	token, err := tokens.Generate("admin-1", "a@example.com", models.UserRoleAdmin)
	require.NoError(t, err)

	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_MultiRoleRoute(t *testing.T) {
	tokens := auth.NewJWTManager("secret", time.Hour)
	r := newTestRouter(tokens)

	for role, want := range map[models.UserRole]int{
		models.UserRoleAnalyst: http.StatusOK,
		models.UserRoleAdmin:   http.StatusOK,
		models.UserRoleUser:    http.StatusForbidden,
	} {
		token, err := tokens.Generate("user-1", "u@example.com", role)
		require.NoError(t, err)

		w := doRequest(r, "/analytics", token)
		assert.Equal(t, want, w.Code, "role %s", role)
	}
}
