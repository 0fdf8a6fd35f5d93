package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config Config
	ttl    int // срок жизни reset-ссылки в минутах, для текста письма
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config Config, resetTTLMinutes int) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		ttl:    resetTTLMinutes,
	}, nil
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(
		p.config.SMTPHost,
		p.config.SMTPPort,
		p.config.Username,
		p.config.Password,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPasswordReset отправляет письмо со ссылкой сброса пароля.
// Сырой токен фигурирует только в ссылке и нигде не логируется.
func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	html, err := Render("password_reset", PasswordResetData{
		ResetURL:   resetURL,
		TTLMinutes: p.ttl,
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Password Reset Request",
		Body:     "Reset Link: " + resetURL,
		HTMLBody: html,
	})
}
