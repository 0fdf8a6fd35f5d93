package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NewResetToken генерирует одноразовый токен для сброса пароля.
// Возвращает сырое значение (уходит пользователю в письме и нигде
// не сохраняется) и его sha256-дайджест (он хранится в БД).
func NewResetToken() (raw string, digest string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	raw = hex.EncodeToString(buf)
	return raw, HashResetToken(raw), nil
}

// HashResetToken считает дайджест сырого токена.
// Это проверка целостности присланного значения, а не хранение секрета,
// поэтому здесь быстрый sha256, а не bcrypt.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
