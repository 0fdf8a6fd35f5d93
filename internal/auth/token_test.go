package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportline_backend/internal/models"
)

const testSecret = "test-secret-key"

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, 2*time.Hour)

	token, err := m.Generate("user-123", "user@example.com", models.UserRoleAnalyst)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, models.UserRoleAnalyst, claims.Role)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager(testSecret, -time.Minute)

	token, err := m.Generate("user-123", "user@example.com", models.UserRoleUser)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)
	other := NewJWTManager("different-secret", time.Hour)

	token, err := m.Generate("user-123", "user@example.com", models.UserRoleUser)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_TamperedToken(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	token, err := m.Generate("user-123", "user@example.com", models.UserRoleUser)
	require.NoError(t, err)

	// Подпись покрывает все claims: порча одного байта инвалидирует токен
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = m.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_GarbageInput(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
