package models

import (
	"encoding/base64"
	"fmt"
	"time"
)

type User struct {
	BaseModel
	FirstName    string   `gorm:"not null" json:"first_name"`
	LastName     string   `gorm:"not null" json:"last_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	FavoriteSportID string `gorm:"type:uuid;not null" json:"favorite_sport_id"`
	FavoriteSport   *Sport `gorm:"foreignKey:FavoriteSportID" json:"favorite_sport,omitempty"`

	// Фото профиля храним прямо в записи (bytea), как и прочие профильные поля
	Photo     []byte `json:"-"`
	PhotoType string `json:"-"`

	// Reset-пара: хеш одноразового токена + срок действия.
	// Инвариант: оба поля либо заполнены, либо пусты - очищаются вместе.
	ResetTokenHash string     `gorm:"index" json:"-"`
	ResetTokenExp  *time.Time `json:"-"`
}

// PhotoURL возвращает data-URI для фото профиля, либо пустую строку
func (u *User) PhotoURL() string {
	if len(u.Photo) == 0 || u.PhotoType == "" {
		return ""
	}
	return fmt.Sprintf("data:%s;charset=utf-8;base64,%s",
		u.PhotoType, base64.StdEncoding.EncodeToString(u.Photo))
}
