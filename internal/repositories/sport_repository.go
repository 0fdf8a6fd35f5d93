package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sportline_backend/internal/models"
)

var (
	ErrSportNotFound      = errors.New("sport not found")
	ErrSportAlreadyExists = errors.New("sport already exists")
)

type SportRepository interface {
	FindAll() ([]models.Sport, error)
	FindByID(id string) (*models.Sport, error)
	FindByName(name string) (*models.Sport, error)
	Create(sport *models.Sport) error
	Delete(id string) error
	CountAll() (int64, error)
}

type SportRepositoryImpl struct {
	db *gorm.DB
}

func NewSportRepository(db *gorm.DB) SportRepository {
	return &SportRepositoryImpl{db: db}
}

// FindAll возвращает справочник видов спорта по алфавиту
func (r *SportRepositoryImpl) FindAll() ([]models.Sport, error) {
	var sports []models.Sport
	err := r.db.Order("name ASC").Find(&sports).Error
	return sports, err
}

func (r *SportRepositoryImpl) FindByID(id string) (*models.Sport, error) {
	var sport models.Sport
	err := r.db.First(&sport, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return &sport, nil
}

func (r *SportRepositoryImpl) FindByName(name string) (*models.Sport, error) {
	var sport models.Sport
	err := r.db.First(&sport, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return &sport, nil
}

func (r *SportRepositoryImpl) Create(sport *models.Sport) error {
	if err := r.db.Create(sport).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSportAlreadyExists
		}
		return err
	}
	return nil
}

func (r *SportRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Sport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSportNotFound
	}
	return nil
}

func (r *SportRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Sport{}).Count(&count).Error
	return count, err
}
