package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/logger"
	"sportline_backend/internal/middleware"
	"sportline_backend/internal/models"
	"sportline_backend/internal/services"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

const defaultUsersPageSize = 50

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
	}
}

// RegisterRoutes - маршруты профиля и админские операции над пользователями.
// authMW обязателен для всей группы, админские дополнительно закрыты ролью.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profileGroup := rg.Group("/profile", authMW)
	{
		profileGroup.GET("", h.GetProfile)
		profileGroup.PUT("", h.UpdateProfile)
		profileGroup.POST("/photo", h.UploadPhoto)
		profileGroup.POST("/password", h.ChangePassword)
	}

	usersGroup := rg.Group("/users", authMW, middleware.RequireRoles(models.UserRoleAdmin))
	{
		usersGroup.GET("", h.ListUsers)
		usersGroup.DELETE("/:id", h.DeleteUser)
	}

	// Проверочная точка входа в админку: сам факт 200 означает,
	// что токен валиден и роль admin
	rg.GET("/admin-panel", authMW, middleware.RequireRoles(models.UserRoleAdmin), h.AdminPanel)
}

// GetProfile godoc
// @Summary      Профиль текущего пользователя
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserDTO
// @Failure      401 {object} apperrors.AppError
// @Router       /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Частичное обновление своего профиля
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "Изменяемые поля"
// @Success      200 {object} dto.UserDTO
// @Failure      400 {object} apperrors.AppError
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Profile updated", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// UploadPhoto godoc
// @Summary      Загрузка фото профиля
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        photo formData file true "Изображение (jpeg/png/gif)"
// @Success      200 {object} map[string]string
// @Failure      400 {object} apperrors.AppError
// @Failure      413 {object} apperrors.AppError
// @Router       /profile/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No image file provided."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to open uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	photoURL, err := h.userService.UploadPhoto(userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Profile photo updated", "user_id", userID, "size_bytes", len(data))
	c.JSON(http.StatusOK, gin.H{
		"message":   "Photo uploaded successfully",
		"photo_url": photoURL,
	})
}

// ChangePassword godoc
// @Summary      Смена пароля при известном текущем
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ChangePasswordRequest true "Текущий и новый пароль"
// @Success      200 {object} map[string]string
// @Failure      401 {object} apperrors.AppError
// @Router       /profile/password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Password changed", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// ListUsers godoc
// @Summary      Список пользователей (только админ)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Размер страницы"
// @Param        offset query int false "Смещение"
// @Success      200 {array} dto.UserDTO
// @Failure      403 {object} apperrors.AppError
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultUsersPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultUsersPageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	users, err := h.userService.GetUsers(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// DeleteUser godoc
// @Summary      Удаление пользователя (только админ)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID пользователя"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.AppError
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")
	if targetID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("User ID is required"))
		return
	}

	if err := h.userService.DeleteUser(targetID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User deleted by admin",
		"target_id", targetID,
		"admin_id", middleware.GetUserID(c),
	)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// AdminPanel godoc
// @Summary      Проверка доступа в админку
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Failure      403 {object} apperrors.AppError
// @Router       /admin-panel [get]
func (h *UserHandler) AdminPanel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the admin panel"})
}
