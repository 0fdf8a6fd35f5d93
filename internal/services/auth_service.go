package services

import (
	"fmt"
	"strings"
	"time"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/email"
	"sportline_backend/internal/models"
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest, photo []byte, photoType string) (*dto.UserDTO, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(rawToken, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	sportRepo     repositories.SportRepository
	emailProvider email.Provider
	tokens        *auth.JWTManager
	frontendURL   string
	resetTTL      time.Duration
	allowedTypes  []string
	maxPhotoSize  int64
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sportRepo repositories.SportRepository,
	emailProvider email.Provider,
	tokens *auth.JWTManager,
	frontendURL string,
	resetTTL time.Duration,
	allowedTypes []string,
	maxPhotoSize int64,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		sportRepo:     sportRepo,
		emailProvider: emailProvider,
		tokens:        tokens,
		frontendURL:   frontendURL,
		resetTTL:      resetTTL,
		allowedTypes:  allowedTypes,
		maxPhotoSize:  maxPhotoSize,
	}
}

// NormalizeEmail - email сравнивается без учета регистра и пробелов по краям
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest, photo []byte, photoType string) (*dto.UserDTO, error) {
	// Роль по умолчанию - user; все прочее отсекаем до обращения к БД
	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Фото на регистрации проходит те же проверки, что и при
	// загрузке в профиль: чужой MIME-тип или негабаритный блоб
	// не должны попадать в БД и затем в data-URI
	if len(photo) > 0 {
		if s.maxPhotoSize > 0 && int64(len(photo)) > s.maxPhotoSize {
			return nil, apperrors.ErrFileTooLarge
		}
		if !photoTypeAllowed(s.allowedTypes, photoType) {
			return nil, apperrors.ErrInvalidFileType
		}
	}

	// Любимый спорт должен существовать в справочнике
	if _, err := s.sportRepo.FindByID(req.FavoriteSportID); err != nil {
		if apperrors.Is(err, repositories.ErrSportNotFound) {
			return nil, apperrors.ErrSportNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Пароль хешируется ровно один раз - здесь, на входе plaintext
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           NormalizeEmail(req.Email),
		PasswordHash:    passwordHash,
		Role:            role,
		FavoriteSportID: req.FavoriteSportID,
		Photo:           photo,
		PhotoType:       photoType,
	}

	// Репозиторий делает быструю проверку на дубликат, но источником
	// истины остается уникальный индекс: конкурентный писатель тоже
	// получит ErrUserAlreadyExists
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Не различаем "нет пользователя" и "неверный пароль"
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserDTO(user),
	}, nil
}

// RequestPasswordReset - начало сброса пароля.
// В БД сохраняется только дайджест токена; сырое значение уходит
// пользователю в письме и больше нигде не существует.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	rawToken, digest, err := auth.NewResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	expiresAt := time.Now().Add(s.resetTTL)
	if err := s.userRepo.SetResetToken(user.ID, digest, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, rawToken)

	// Отказ доставки и откат reset-пары - одна операция: нельзя
	// оставлять в БД тикет, который никому не был доставлен
	if err := s.emailProvider.SendPasswordReset(user.Email, resetURL); err != nil {
		if clearErr := s.userRepo.ClearResetToken(user.ID); clearErr != nil {
			return apperrors.DependencyError(clearErr, "email")
		}
		return apperrors.DependencyError(err, "email")
	}

	return nil
}

// ResetPassword - завершение сброса по сырому токену.
// Неверный и просроченный токен неразличимы для вызывающего.
func (s *AuthServiceImpl) ResetPassword(rawToken, newPassword string) error {
	digest := auth.HashResetToken(rawToken)

	user, err := s.userRepo.FindByResetToken(digest)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Новый хеш и очистка reset-пары - один UPDATE, токен одноразовый
	if err := s.userRepo.ResetPassword(user.ID, passwordHash); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ChangePassword - смена пароля при известном текущем
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = passwordHash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
