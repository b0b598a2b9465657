package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (неверная форма запроса, значение не того типа).
	ErrValidation = errors.New("validation failed")

	// ErrConstraintViolation используется, когда хранилище отклонило запись
	// (NOT NULL, CHECK, UNIQUE и т.п.).
	ErrConstraintViolation = errors.New("constraint violation")
)
