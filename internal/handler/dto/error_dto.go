package dto

import "net/http"

// ErrorResponse - единый формат ответа об ошибке
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// errorMessages - фиксированные тексты для каждого поддерживаемого статуса
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusTooManyRequests:     "Too many requests",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// NewErrorResponse создает ответ об ошибке для статуса.
// Неизвестные статусы сводятся к 500.
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = errorMessages[status]
	}
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
