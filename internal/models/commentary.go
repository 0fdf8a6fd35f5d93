package models

type Commentary struct {
	BaseModel
	Comment  string `gorm:"not null" json:"comment"`
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Username string `gorm:"not null" json:"username"`

	// Тег спорта храним строкой, как его вводит клиент; "general" по умолчанию
	Sport string `gorm:"not null;default:'general';index" json:"sport"`
}
