package email

import "errors"

var (
	ErrNoSMTPHost  = errors.New("SMTP host is required")
	ErrBadSMTPPort = errors.New("invalid SMTP port")
	ErrNoFromEmail = errors.New("from email is required")
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет готовое сообщение
	Send(email *Email) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to, resetURL string) error
}

// ErrDeliveryDisabled возвращается, когда SMTP не сконфигурирован
var ErrDeliveryDisabled = errors.New("email delivery is not configured")

// DisabledProvider - заглушка для окружений без SMTP.
// Любая отправка завершается ошибкой, сервисный слой откатывает
// reset-пару как при обычном отказе доставки.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) Send(email *Email) error {
	return ErrDeliveryDisabled
}

func (p *DisabledProvider) SendPasswordReset(to, resetURL string) error {
	return ErrDeliveryDisabled
}
