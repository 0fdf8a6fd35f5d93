package dto

import (
	"time"

	"sportline_backend/internal/models"
)

// UserDTO - публичное представление пользователя.
// Хеш пароля и reset-поля наружу не уходят никогда,
// сырое фото заменено на data-URI.
type UserDTO struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	FavoriteSport string          `json:"favorite_sport,omitempty"`
	PhotoURL      string          `json:"photo_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewUserDTO строит DTO из модели
func NewUserDTO(u *models.User) UserDTO {
	d := UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		PhotoURL:  u.PhotoURL(),
		CreatedAt: u.CreatedAt,
	}
	if u.FavoriteSport != nil {
		d.FavoriteSport = u.FavoriteSport.Name
	}
	return d
}

// UpdateProfileRequest - частичное обновление своего профиля.
// Пароль хешируется заново только если он здесь передан.
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name" validate:"omitempty,alpha_space"`
	LastName        string `json:"last_name" validate:"omitempty,alpha_space"`
	FavoriteSportID string `json:"favorite_sport_id" validate:"omitempty"`
	Password        string `json:"password" validate:"omitempty,min=8"`
}
