package services

import (
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

const (
	topSportsLimit   = 10
	recentUsersLimit = 5
)

type AnalyticsService interface {
	GetSystemAnalytics() (*dto.SystemAnalytics, error)
}

type analyticsService struct {
	userRepo  repositories.UserRepository
	sportRepo repositories.SportRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	sportRepo repositories.SportRepository,
) AnalyticsService {
	return &analyticsService{
		userRepo:  userRepo,
		sportRepo: sportRepo,
	}
}

// GetSystemAnalytics собирает сводку платформы: счетчики,
// распределение по ролям, топ видов спорта и недавние регистрации
func (s *analyticsService) GetSystemAnalytics() (*dto.SystemAnalytics, error) {
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalSports, err := s.sportRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	bySport, err := s.userRepo.CountByFavoriteSport(topSportsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.userRepo.FindRecent(recentUsersLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentDTOs := make([]dto.RecentUserDTO, 0, len(recent))
	for _, u := range recent {
		recentDTOs = append(recentDTOs, dto.RecentUserDTO{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	return &dto.SystemAnalytics{
		TotalUsers:   totalUsers,
		TotalSports:  totalSports,
		UsersByRole:  byRole,
		UsersBySport: bySport,
		RecentUsers:  recentDTOs,
	}, nil
}
