package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("StrongPass1!")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "StrongPass1!", hash)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	hash1, err := HashPassword("StrongPass1!")
	require.NoError(t, err)
	hash2, err := HashPassword("StrongPass1!")
	require.NoError(t, err)

	// Соль встроена в дайджест - одинаковые пароли дают разные хеши,
	// но оба проходят проверку
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPasswordHash("StrongPass1!", hash1))
	assert.True(t, CheckPasswordHash("StrongPass1!", hash2))
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("StrongPass1!")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("StrongPass1!", hash))
	assert.False(t, CheckPasswordHash("WrongPass1!", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	// Битый дайджест - просто false, без паники и без ошибки наружу
	assert.False(t, CheckPasswordHash("StrongPass1!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("StrongPass1!", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
}
