package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Встроенные шаблоны писем. Справочник небольшой, поэтому держим
// шаблоны в коде, а не в отдельной директории.
var templates = map[string]string{
	"password_reset": `
<h1>You have requested a password reset</h1>
<p>Please go to this link to reset your password:</p>
<a href="{{.ResetURL}}" clicktracking="off">{{.ResetURL}}</a>
<p>The link is valid for {{.TTLMinutes}} minutes. If you did not request a reset, ignore this email.</p>
`,
}

// PasswordResetData - данные для шаблона письма сброса пароля
type PasswordResetData struct {
	ResetURL   string
	TTLMinutes int
}

// Render рендерит именованный шаблон с данными
func Render(name string, data interface{}) (string, error) {
	raw, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	tmpl, err := template.New(name).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
