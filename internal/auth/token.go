package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sportline_backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims - содержимое access-токена
type Claims struct {
	UserID string          `json:"id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager выпускает и проверяет access-токены.
// Секрет и TTL задаются один раз при создании и дальше не меняются;
// ротация секрета означает новый экземпляр и инвалидацию всех
// выданных токенов (списка отзыва нет).
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager создает менеджер токенов
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate выпускает подписанный токен с identity и ролью.
// Подпись покрывает все claims, любое изменение инвалидирует токен.
func (m *JWTManager) Generate(userID, email string, role models.UserRole) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse проверяет подпись и срок действия токена.
// Битый, подделанный или просроченный токен - всегда ErrInvalidToken.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
