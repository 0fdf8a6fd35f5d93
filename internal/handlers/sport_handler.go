package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/logger"
	"sportline_backend/internal/middleware"
	"sportline_backend/internal/models"
	"sportline_backend/internal/services"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type SportHandler struct {
	*BaseHandler
	sportService services.SportService
}

func NewSportHandler(base *BaseHandler, sportService services.SportService) *SportHandler {
	return &SportHandler{
		BaseHandler:  base,
		sportService: sportService,
	}
}

// RegisterRoutes - справочник видов спорта.
// Чтение публичное (нужно форме регистрации), запись только админу.
func (h *SportHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	sportsGroup := rg.Group("/sports")
	{
		sportsGroup.GET("", h.ListSports)
		sportsGroup.POST("", authMW, middleware.RequireRoles(models.UserRoleAdmin), h.CreateSport)
		sportsGroup.DELETE("/:id", authMW, middleware.RequireRoles(models.UserRoleAdmin), h.DeleteSport)
	}
}

// ListSports godoc
// @Summary      Список видов спорта
// @Tags         sports
// @Produce      json
// @Success      200 {array} models.Sport
// @Router       /sports [get]
func (h *SportHandler) ListSports(c *gin.Context) {
	sports, err := h.sportService.GetAllSports()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sports)
}

// CreateSport godoc
// @Summary      Добавление вида спорта (только админ)
// @Tags         sports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateSportRequest true "Название"
// @Success      201 {object} models.Sport
// @Failure      409 {object} apperrors.AppError
// @Router       /sports [post]
func (h *SportHandler) CreateSport(c *gin.Context) {
	var req dto.CreateSportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sport, err := h.sportService.CreateSport(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Sport created", "sport_id", sport.ID, "name", sport.Name)
	c.JSON(http.StatusCreated, sport)
}

// DeleteSport godoc
// @Summary      Удаление вида спорта (только админ)
// @Tags         sports
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID вида спорта"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.AppError
// @Router       /sports/{id} [delete]
func (h *SportHandler) DeleteSport(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Sport ID is required"))
		return
	}

	if err := h.sportService.DeleteSport(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sport deleted successfully"})
}
