package dto

import (
	"sportline_backend/internal/models"
)

// RegisterRequest - запрос регистрации.
// Роль опциональна: пустое значение означает "user".
type RegisterRequest struct {
	FirstName       string          `json:"first_name" form:"first_name" validate:"required,alpha_space"`
	LastName        string          `json:"last_name" form:"last_name" validate:"required,alpha_space"`
	Email           string          `json:"email" form:"email" validate:"required,email"`
	Password        string          `json:"password" form:"password" validate:"required,strong_password"`
	Role            models.UserRole `json:"role" form:"role" validate:"omitempty,oneof=user admin analyst"`
	FavoriteSportID string          `json:"favorite_sport_id" form:"favorite_sport_id" validate:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ с токеном и профилем
type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// PasswordForgotRequest - запрос на начало сброса пароля
type PasswordForgotRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequest - завершение сброса (токен приходит в path)
type PasswordResetRequest struct {
	Password string `json:"password" validate:"required,strong_password"`
}

// ChangePasswordRequest - смена пароля при известном текущем
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,strong_password"`
}
