package services

import (
	"strings"

	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

const (
	// Лимиты выдачи лент комментариев
	latestCommentariesLimit  = 100
	bySportCommentariesLimit = 50
)

type CommentaryService interface {
	GetLatest() ([]models.Commentary, error)
	GetBySport(sport string) ([]models.Commentary, error)
	Create(userID, username string, req *dto.CreateCommentaryRequest) (*models.Commentary, error)
	Delete(id, userID string) error
}

type CommentaryServiceImpl struct {
	commentaryRepo repositories.CommentaryRepository
}

func NewCommentaryService(commentaryRepo repositories.CommentaryRepository) CommentaryService {
	return &CommentaryServiceImpl{commentaryRepo: commentaryRepo}
}

func (s *CommentaryServiceImpl) GetLatest() ([]models.Commentary, error) {
	commentaries, err := s.commentaryRepo.FindLatest(latestCommentariesLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return commentaries, nil
}

func (s *CommentaryServiceImpl) GetBySport(sport string) ([]models.Commentary, error) {
	commentaries, err := s.commentaryRepo.FindBySport(sport, bySportCommentariesLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return commentaries, nil
}

func (s *CommentaryServiceImpl) Create(userID, username string, req *dto.CreateCommentaryRequest) (*models.Commentary, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, apperrors.NewBadRequestError("Comment cannot be empty")
	}

	sport := req.Sport
	if sport == "" {
		sport = "general"
	}

	commentary := &models.Commentary{
		Comment:  comment,
		UserID:   userID,
		Username: username,
		Sport:    sport,
	}

	if err := s.commentaryRepo.Create(commentary); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return commentary, nil
}

// Delete - удалить может только автор комментария
func (s *CommentaryServiceImpl) Delete(id, userID string) error {
	commentary, err := s.commentaryRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentaryNotFound) {
			return apperrors.ErrCommentaryNotFound
		}
		return apperrors.InternalError(err)
	}

	if commentary.UserID != userID {
		return apperrors.ErrNotCommentaryOwner
	}

	if err := s.commentaryRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
