package services

import (
	"strings"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserDTO, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	UploadPhoto(userID string, photo []byte, photoType string) (string, error)
	GetUsers(limit, offset int) ([]dto.UserDTO, error)
	DeleteUser(userID string) error
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	sportRepo    repositories.SportRepository
	allowedTypes []string
	maxPhotoSize int64
}

func NewUserService(
	userRepo repositories.UserRepository,
	sportRepo repositories.SportRepository,
	allowedTypes []string,
	maxPhotoSize int64,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		sportRepo:    sportRepo,
		allowedTypes: allowedTypes,
		maxPhotoSize: maxPhotoSize,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// UpdateProfile обновляет только переданные поля.
// Пароль перехешируется исключительно когда в запросе пришел новый
// plaintext - обновление имени не трогает хеш.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != "" {
		user.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		user.LastName = strings.TrimSpace(req.LastName)
	}
	if req.FavoriteSportID != "" {
		if _, err := s.sportRepo.FindByID(req.FavoriteSportID); err != nil {
			if apperrors.Is(err, repositories.ErrSportNotFound) {
				return nil, apperrors.ErrSportNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		user.FavoriteSportID = req.FavoriteSportID
	}
	if req.Password != "" {
		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Перечитываем с Preload, чтобы в ответе было имя спорта
	updated, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(updated)
	return &userDTO, nil
}

// UploadPhoto сохраняет фото профиля и возвращает data-URI
func (s *UserServiceImpl) UploadPhoto(userID string, photo []byte, photoType string) (string, error) {
	if len(photo) == 0 {
		return "", apperrors.NewBadRequestError("No image file provided.")
	}
	if s.maxPhotoSize > 0 && int64(len(photo)) > s.maxPhotoSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !s.isAllowedType(photoType) {
		return "", apperrors.ErrInvalidFileType
	}

	if err := s.userRepo.UpdatePhoto(userID, photo, photoType); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}

	u := &models.User{Photo: photo, PhotoType: photoType}
	return u.PhotoURL(), nil
}

func (s *UserServiceImpl) isAllowedType(photoType string) bool {
	return photoTypeAllowed(s.allowedTypes, photoType)
}

// photoTypeAllowed - общая для регистрации и загрузки в профиль
// проверка MIME-типа фото
func photoTypeAllowed(allowed []string, photoType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, photoType) {
			return true
		}
	}
	return false
}

// GetUsers - список пользователей для админа, без чувствительных полей
func (s *UserServiceImpl) GetUsers(limit, offset int) ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, dto.NewUserDTO(&users[i]))
	}
	return result, nil
}

// DeleteUser - удаление аккаунта (только админ)
func (s *UserServiceImpl) DeleteUser(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
