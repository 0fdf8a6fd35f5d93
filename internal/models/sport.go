package models

type Sport struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
