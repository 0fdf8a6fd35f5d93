package dto

// CreateCommentaryRequest - публикация комментария.
// Sport опционален, по умолчанию "general".
type CreateCommentaryRequest struct {
	Comment string `json:"comment" validate:"required"`
	Sport   string `json:"sport" validate:"omitempty,max=60"`
}
