package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/logger"
)

type HealthHandler struct {
	*BaseHandler
	startedAt time.Time
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		startedAt:   time.Now(),
	}
}

// RegisterRoutes - проверка живости, без аутентификации
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
}

// Health godoc
// @Summary      Проверка живости сервиса и соединения с БД
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Health check: database unreachable", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
