package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/handlers"
	"sportline_backend/internal/middleware"
)

// Handlers - все обработчики приложения, собранные в одном месте
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Sport      *handlers.SportHandler
	Commentary *handlers.CommentaryHandler
	Analytics  *handlers.AnalyticsHandler
	Health     *handlers.HealthHandler
}

// RegisterRoutes собирает маршруты API под /api/v1.
// Публичные: register, login, forgot/reset, sports (чтение), health.
// Остальное за AuthMiddleware, админские и аналитика - за RequireRoles.
// limiter вешается на login и forgot; его жизненным циклом управляет
// вызывающий (app.Run).
func RegisterRoutes(r *gin.Engine, h *Handlers, tokens *auth.JWTManager, rl *middleware.RateLimiter) {
	authMW := middleware.AuthMiddleware(tokens)
	limiter := rl.Middleware()

	h.Health.RegisterRoutes(r)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api, limiter)
		h.User.RegisterRoutes(api, authMW)
		h.Sport.RegisterRoutes(api, authMW)
		h.Commentary.RegisterRoutes(api, authMW)
		h.Analytics.RegisterRoutes(api, authMW)
	}
}
