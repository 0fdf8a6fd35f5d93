package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPasswordReset(t *testing.T) {
	html, err := Render("password_reset", PasswordResetData{
		ResetURL:   "http://localhost:5173/reset-password/abc123",
		TTLMinutes: 10,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "http://localhost:5173/reset-password/abc123")
	assert.Contains(t, html, "10 minutes")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("no-such-template", nil)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{SMTPHost: "smtp.example.com", SMTPPort: 587, FromEmail: "noreply@example.com"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, Config{SMTPPort: 587, FromEmail: "a@b.com"}.Validate(), ErrNoSMTPHost)
	assert.ErrorIs(t, Config{SMTPHost: "h", FromEmail: "a@b.com"}.Validate(), ErrBadSMTPPort)
	assert.ErrorIs(t, Config{SMTPHost: "h", SMTPPort: 587}.Validate(), ErrNoFromEmail)
}

func TestDisabledProvider(t *testing.T) {
	p := NewDisabledProvider()
	assert.ErrorIs(t, p.SendPasswordReset("a@b.com", "http://x"), ErrDeliveryDisabled)
	assert.ErrorIs(t, p.Send(&Email{To: []string{"a@b.com"}}), ErrDeliveryDisabled)
}
