package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/logger"
	"sportline_backend/internal/models"
	"sportline_backend/pkg/apperrors"
)

// Ключи, под которыми claims лежат в gin.Context
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "role"
	ContextEmailKey    = "email"
)

// AuthMiddleware - проверка JWT. Без валидного токена запрос
// обрывается до любого обработчика; состояние между запросами
// не хранится, identity и роль каждый раз берутся из токена.
func AuthMiddleware(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Claims в gin-контекст + user_id в slog-контекст
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, string(claims.Role))
		c.Set(ContextEmailKey, claims.Email)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - проверка, что роль из токена входит в допустимый
// набор. Всегда идет после AuthMiddleware: аутентификация и
// авторизация - два независимых шлюза.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
			return
		}

		if !roleSet[models.UserRole(roleStr)] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole извлекает роль пользователя из контекста
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return ""
	}

	roleStr, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return models.UserRole(roleStr)
}
