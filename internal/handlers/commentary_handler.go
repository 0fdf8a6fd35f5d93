package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/logger"
	"sportline_backend/internal/services"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type CommentaryHandler struct {
	*BaseHandler
	commentaryService services.CommentaryService
	userService       services.UserService
}

func NewCommentaryHandler(
	base *BaseHandler,
	commentaryService services.CommentaryService,
	userService services.UserService,
) *CommentaryHandler {
	return &CommentaryHandler{
		BaseHandler:       base,
		commentaryService: commentaryService,
		userService:       userService,
	}
}

// RegisterRoutes - лента комментариев, целиком за аутентификацией
func (h *CommentaryHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	commentariesGroup := rg.Group("/commentaries", authMW)
	{
		commentariesGroup.GET("", h.ListLatest)
		commentariesGroup.GET("/sport/:sport", h.ListBySport)
		commentariesGroup.POST("", h.Create)
		commentariesGroup.DELETE("/:id", h.Delete)
	}
}

// ListLatest godoc
// @Summary      Последние комментарии по всем видам спорта
// @Tags         commentaries
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Commentary
// @Router       /commentaries [get]
func (h *CommentaryHandler) ListLatest(c *gin.Context) {
	commentaries, err := h.commentaryService.GetLatest()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, commentaries)
}

// ListBySport godoc
// @Summary      Комментарии по одному виду спорта
// @Tags         commentaries
// @Produce      json
// @Security     BearerAuth
// @Param        sport path string true "Название вида спорта"
// @Success      200 {array} models.Commentary
// @Router       /commentaries/sport/{sport} [get]
func (h *CommentaryHandler) ListBySport(c *gin.Context) {
	sport := c.Param("sport")

	commentaries, err := h.commentaryService.GetBySport(sport)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, commentaries)
}

// Create godoc
// @Summary      Публикация комментария
// @Tags         commentaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCommentaryRequest true "Текст и вид спорта"
// @Success      201 {object} models.Commentary
// @Failure      400 {object} apperrors.AppError
// @Router       /commentaries [post]
func (h *CommentaryHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentaryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Имя автора денормализуется в запись, чтобы лента не ходила
	// за пользователями при каждом чтении
	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	username := profile.FirstName + " " + profile.LastName

	commentary, err := h.commentaryService.Create(userID, username, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Commentary created", "commentary_id", commentary.ID, "sport", commentary.Sport)
	c.JSON(http.StatusCreated, commentary)
}

// Delete godoc
// @Summary      Удаление своего комментария
// @Tags         commentaries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID комментария"
// @Success      200 {object} map[string]string
// @Failure      403 {object} apperrors.AppError
// @Failure      404 {object} apperrors.AppError
// @Router       /commentaries/{id} [delete]
func (h *CommentaryHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Commentary ID is required"))
		return
	}

	if err := h.commentaryService.Delete(id, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commentary deleted successfully"})
}
