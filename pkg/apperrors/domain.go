package apperrors

import (
	"net/http"
)

/*
Предопределенные переменные для общих ошибок
бизнес-логики и домена.
*/

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Не различаем "нет такого пользователя" и "неверный пароль".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (access или reset).
// Для reset-токена намеренно не раскрываем, что именно не так.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidUserRole - роль вне списка {user, admin, analyst}
var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid role. Must be 'admin', 'user' or 'analyst'",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - роль не входит в требуемый набор
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrWeakPassword - пароль не проходит требования сложности
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Users & Sports ---

// ErrUserNotFound - пользователь не найден
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrSportNotFound - вид спорта не найден
var ErrSportNotFound = New(
	CodeNotFound,
	"sport",
	"Sport not found",
	http.StatusNotFound,
)

// ErrSportAlreadyExists - вид спорта с таким именем уже есть
var ErrSportAlreadyExists = New(
	CodeAlreadyExists,
	"sport",
	"Sport already exists",
	http.StatusConflict,
)

// --- Commentaries ---

// ErrCommentaryNotFound - комментарий не найден
var ErrCommentaryNotFound = New(
	CodeNotFound,
	"commentary",
	"Commentary not found",
	http.StatusNotFound,
)

// ErrNotCommentaryOwner - удалять комментарий может только автор
var ErrNotCommentaryOwner = New(
	CodeForbidden,
	"commentary",
	"Not authorized to delete this commentary",
	http.StatusForbidden,
)

// --- Uploads ---

// ErrInvalidFileType - MIME-тип файла не разрешен
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"Invalid file format. Only JPEG, PNG, and GIF are allowed.",
	http.StatusBadRequest,
)

// ErrFileTooLarge - файл превышает максимальный размер
var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)
