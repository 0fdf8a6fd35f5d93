package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sportline_backend/internal/models"
)

var (
	ErrCommentaryNotFound = errors.New("commentary not found")
)

type CommentaryRepository interface {
	FindLatest(limit int) ([]models.Commentary, error)
	FindBySport(sport string, limit int) ([]models.Commentary, error)
	FindByID(id string) (*models.Commentary, error)
	Create(commentary *models.Commentary) error
	Delete(id string) error
}

type CommentaryRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentaryRepository(db *gorm.DB) CommentaryRepository {
	return &CommentaryRepositoryImpl{db: db}
}

func (r *CommentaryRepositoryImpl) FindLatest(limit int) ([]models.Commentary, error) {
	var commentaries []models.Commentary
	err := r.db.Order("created_at DESC").Limit(limit).Find(&commentaries).Error
	return commentaries, err
}

func (r *CommentaryRepositoryImpl) FindBySport(sport string, limit int) ([]models.Commentary, error) {
	var commentaries []models.Commentary
	err := r.db.Where("sport = ?", sport).
		Order("created_at DESC").Limit(limit).Find(&commentaries).Error
	return commentaries, err
}

func (r *CommentaryRepositoryImpl) FindByID(id string) (*models.Commentary, error) {
	var commentary models.Commentary
	err := r.db.First(&commentary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentaryNotFound
		}
		return nil, err
	}
	return &commentary, nil
}

func (r *CommentaryRepositoryImpl) Create(commentary *models.Commentary) error {
	return r.db.Create(commentary).Error
}

func (r *CommentaryRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Commentary{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentaryNotFound
	}
	return nil
}
