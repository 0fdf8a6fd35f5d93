package email

// Email - сообщение для отправки
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Config - настройки SMTP
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Validate проверяет минимально необходимую конфигурацию
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return ErrNoSMTPHost
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return ErrBadSMTPPort
	}
	if c.FromEmail == "" {
		return ErrNoFromEmail
	}
	return nil
}
