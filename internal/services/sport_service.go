package services

import (
	"strings"

	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type SportService interface {
	GetAllSports() ([]models.Sport, error)
	CreateSport(req *dto.CreateSportRequest) (*models.Sport, error)
	DeleteSport(id string) error
}

type SportServiceImpl struct {
	sportRepo repositories.SportRepository
}

func NewSportService(sportRepo repositories.SportRepository) SportService {
	return &SportServiceImpl{sportRepo: sportRepo}
}

func (s *SportServiceImpl) GetAllSports() ([]models.Sport, error) {
	sports, err := s.sportRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sports, nil
}

func (s *SportServiceImpl) CreateSport(req *dto.CreateSportRequest) (*models.Sport, error) {
	sport := &models.Sport{Name: strings.TrimSpace(req.Name)}

	if err := s.sportRepo.Create(sport); err != nil {
		if apperrors.Is(err, repositories.ErrSportAlreadyExists) {
			return nil, apperrors.ErrSportAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return sport, nil
}

func (s *SportServiceImpl) DeleteSport(id string) error {
	if err := s.sportRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrSportNotFound) {
			return apperrors.ErrSportNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
