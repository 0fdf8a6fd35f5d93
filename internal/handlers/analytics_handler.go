package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/middleware"
	"sportline_backend/internal/models"
	"sportline_backend/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

// RegisterRoutes - сводка платформы, доступна аналитику и админу
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	analyticsGroup := rg.Group("/analytics", authMW, middleware.RequireRoles(models.UserRoleAnalyst, models.UserRoleAdmin))
	{
		analyticsGroup.GET("/system", h.GetSystemAnalytics)
	}
}

// GetSystemAnalytics godoc
// @Summary      Системная аналитика платформы
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SystemAnalytics
// @Failure      403 {object} apperrors.AppError
// @Router       /analytics/system [get]
func (h *AnalyticsHandler) GetSystemAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.GetSystemAnalytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
