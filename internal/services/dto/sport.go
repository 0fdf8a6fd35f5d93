package dto

// CreateSportRequest - добавление вида спорта в справочник
type CreateSportRequest struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
}
