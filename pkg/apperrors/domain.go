package apperrors

import (
	"net/http"
)

// =========================================================================
// Фабрики
// =========================================================================

// ErrNotFound - ресурс не найден (или не виден вызывающему) (404)
func ErrNotFound(domain string, err error) *AppError {
	return Wrap(err, CodeNotFound, domain, capitalize(domain)+" not found", http.StatusNotFound)
}

// ErrStorage - сбой файлового хранилища (500)
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "File storage failure", http.StatusInternalServerError)
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// =========================================================================
// Предопределенные ошибки
// =========================================================================

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"validation",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrCannotModifySelf - админ пытается изменить роль или удалить самого себя
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodePayloadTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrImageTooLarge = New(
	CodeValidationFailed,
	"upload",
	"Image dimensions exceed the allowed limit",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeUnsupportedMediaType,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Organizations ---

var ErrOrganizationExists = New(
	CodeConflict,
	"organization",
	"Account already manages an organization",
	http.StatusConflict,
)

var ErrOrganizationInUse = New(
	CodeConflict,
	"organization",
	"Organization still owns opportunities",
	http.StatusConflict,
)

var ErrUserInUse = New(
	CodeConflict,
	"user",
	"User still owns records",
	http.StatusConflict,
)
