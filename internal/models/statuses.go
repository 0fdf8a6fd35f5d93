package models

type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleAdmin   UserRole = "admin"
	UserRoleAnalyst UserRole = "analyst"
)

// ValidRole проверяет, что роль входит в список допустимых.
// Любое другое значение отсекается до обращения к хранилищу.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleUser, UserRoleAdmin, UserRoleAnalyst:
		return true
	default:
		return false
	}
}
