package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportline_backend/internal/logger"
	"sportline_backend/internal/services"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует публичные маршруты аутентификации.
// limiter вешается на login и forgot против перебора.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, limiter gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", limiter, h.Login)
	}

	passwordGroup := rg.Group("/password")
	{
		passwordGroup.POST("/forgot", limiter, h.ForgotPassword)
		passwordGroup.PUT("/reset/:resetToken", h.ResetPassword)
	}
}

// Register godoc
// @Summary      Регистрация пользователя
// @Tags         auth
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Данные регистрации"
// @Success      201 {object} dto.UserDTO
// @Failure      400 {object} apperrors.AppError
// @Failure      409 {object} apperrors.AppError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Фото опционально и приходит только в multipart-варианте
	photo, photoType, ok := h.readPhoto(c)
	if !ok {
		return
	}

	user, err := h.authService.Register(&req, photo, photoType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// readPhoto читает необязательный файл "photo" из multipart-формы.
// Отсутствие файла - не ошибка.
func (h *AuthHandler) readPhoto(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return nil, "", true
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to open uploaded file"))
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, "", false
	}

	return data, fileHeader.Header.Get("Content-Type"), true
}

// Login godoc
// @Summary      Вход по email и паролю
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Учетные данные"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} apperrors.AppError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User logged in", "user_id", resp.User.ID)
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary      Запрос письма для сброса пароля
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.PasswordForgotRequest true "Email аккаунта"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.AppError
// @Failure      503 {object} apperrors.AppError
// @Router       /password/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.PasswordForgotRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword godoc
// @Summary      Завершение сброса пароля по токену из письма
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        resetToken path string true "Токен из письма"
// @Param        request body dto.PasswordResetRequest true "Новый пароль"
// @Success      200 {object} map[string]string
// @Failure      400 {object} apperrors.AppError
// @Router       /password/reset/{resetToken} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	rawToken := c.Param("resetToken")

	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(rawToken, req.Password); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}
