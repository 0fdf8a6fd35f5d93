package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var nameRegex = regexp.MustCompile(`^[A-Za-z ]+$`)

// registerCustomRules регистрирует доменные правила валидации
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("alpha_space", validateAlphaSpace); err != nil {
		return err
	}
	return v.RegisterValidation("strong_password", validateStrongPassword)
}

// validateAlphaSpace - только буквы и пробелы (имена, фамилии)
func validateAlphaSpace(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// validateStrongPassword - минимум 8 символов, строчная, заглавная,
// цифра и спецсимвол
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}
