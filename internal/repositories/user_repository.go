package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sportline_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdatePhoto(userID string, photo []byte, photoType string) error
	Delete(userID string) error
	FindAll(limit, offset int) ([]models.User, error)

	// Reset-пара (хеш токена + срок действия) всегда меняется целиком
	SetResetToken(userID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(userID string) error
	FindByResetToken(tokenHash string) (*models.User, error)
	ResetPassword(userID, passwordHash string) error
	CleanExpiredResetTokens() (int64, error)

	// Analytics
	CountAll() (int64, error)
	CountByRole() (map[string]int64, error)
	CountByFavoriteSport(limit int) ([]SportCount, error)
	FindRecent(limit int) ([]models.User, error)
}

// SportCount - строка отчета "пользователи по видам спорта"
type SportCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("FavoriteSport").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("FavoriteSport").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create сохраняет нового пользователя.
// Предварительная проверка на дубликат - только быстрый путь;
// источник истины - уникальный индекс по email. Проигравший
// конкурентный писатель получает ErrUserAlreadyExists от индекса.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// Update - полная замена изменяемых полей.
// PasswordHash сюда попадает уже захешированным, репозиторий
// никогда не хеширует сам.
func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"email":             user.Email,
		"password_hash":     user.PasswordHash,
		"role":              user.Role,
		"favorite_sport_id": user.FavoriteSportID,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePhoto(userID string, photo []byte, photoType string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"photo":      photo,
		"photo_type": photoType,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	result := r.db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("FavoriteSport").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

// Reset-token operations

// SetResetToken записывает пару (хеш, срок) одним UPDATE.
// Конкурентные запросы сброса для одного пользователя гоняются
// доброкачественно: остается валидной последняя записанная пара.
func (r *UserRepositoryImpl) SetResetToken(userID, tokenHash string, expiresAt time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token_hash": tokenHash,
		"reset_token_exp":  expiresAt,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ClearResetToken(userID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token_hash": "",
		"reset_token_exp":  nil,
		"updated_at":       time.Now(),
	})
	return result.Error
}

// FindByResetToken находит пользователя по дайджесту токена
// с еще не истекшим сроком действия
func (r *UserRepositoryImpl) FindByResetToken(tokenHash string) (*models.User, error) {
	var user models.User
	err := r.db.Where("reset_token_hash = ? AND reset_token_hash != '' AND reset_token_exp > ?",
		tokenHash, time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResetPassword устанавливает новый хеш пароля и одним UPDATE
// очищает reset-пару - токен становится одноразовым
func (r *UserRepositoryImpl) ResetPassword(userID, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_hash":    passwordHash,
		"reset_token_hash": "",
		"reset_token_exp":  nil,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CleanExpiredResetTokens чистит просроченные reset-пары (фоновый воркер)
func (r *UserRepositoryImpl) CleanExpiredResetTokens() (int64, error) {
	result := r.db.Model(&models.User{}).
		Where("reset_token_hash != '' AND reset_token_exp < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token_hash": "",
			"reset_token_exp":  nil,
		})
	return result.RowsAffected, result.Error
}

// Analytics

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByRole() (map[string]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}

	var rows []roleCount
	err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, rc := range rows {
		result[rc.Role] = rc.Count
	}
	return result, nil
}

// CountByFavoriteSport - топ видов спорта по числу пользователей
func (r *UserRepositoryImpl) CountByFavoriteSport(limit int) ([]SportCount, error) {
	var rows []SportCount
	err := r.db.Model(&models.User{}).
		Select("sports.name as name, COUNT(*) as count").
		Joins("JOIN sports ON sports.id = users.favorite_sport_id").
		Group("sports.name").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *UserRepositoryImpl) FindRecent(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}
