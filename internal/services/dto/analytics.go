package dto

import (
	"time"

	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
)

// RecentUserDTO - сокращенное представление для списка недавних регистраций
type RecentUserDTO struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// SystemAnalytics - сводка для аналитиков и админов
type SystemAnalytics struct {
	TotalUsers   int64                     `json:"total_users"`
	TotalSports  int64                     `json:"total_sports"`
	UsersByRole  map[string]int64          `json:"users_by_role"`
	UsersBySport []repositories.SportCount `json:"users_by_sport"`
	RecentUsers  []RecentUserDTO           `json:"recent_users"`
}
