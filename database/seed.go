package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/config"
	"sportline_backend/internal/logger"
	"sportline_backend/internal/models"
)

// Базовый справочник видов спорта. Сидер идемпотентен:
// существующие записи не трогаются.
var defaultSports = []string{
	"Football",
	"Basketball",
	"Tennis",
	"Hockey",
	"Volleyball",
	"Boxing",
	"Swimming",
	"Athletics",
}

// Seed наполняет справочник спорта и при наличии настроек
// создает стартовый админский аккаунт
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedSports(db); err != nil {
		return err
	}
	return seedAdmin(db, cfg)
}

func seedSports(db *gorm.DB) error {
	for _, name := range defaultSports {
		var sport models.Sport
		err := db.Where("name = ?", name).First(&sport).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed sports lookup failed: %w", err)
		}

		sport = models.Sport{Name: name}
		if err := db.Create(&sport).Error; err != nil {
			// Конкурентный сидер мог успеть раньше
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return fmt.Errorf("seed sports create failed: %w", err)
		}
	}

	logger.Info("Sports reference table seeded", "count", len(defaultSports))
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Debug("Admin seed skipped: credentials not configured")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Seed.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed admin lookup failed: %w", err)
	}

	var sport models.Sport
	if err := db.Order("name asc").First(&sport).Error; err != nil {
		return fmt.Errorf("seed admin: no sports available: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin hash failed: %w", err)
	}

	admin := models.User{
		FirstName:       "Platform",
		LastName:        "Admin",
		Email:           cfg.Seed.AdminEmail,
		PasswordHash:    passwordHash,
		Role:            models.UserRoleAdmin,
		FavoriteSportID: sport.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("seed admin create failed: %w", err)
	}

	logger.Info("Admin account seeded", "email", cfg.Seed.AdminEmail)
	return nil
}
