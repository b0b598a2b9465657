package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/middleware"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// ErrorMapper переводит ошибки сервисов в HTTP-ответы.
//
// В режиме compat статус определяется только обработчиком (fallback): так
// клиент получает один и тот же код для любой ошибки операции. В режиме typed
// статус зависит от типа ошибки.
type ErrorMapper struct {
	mode string
}

// NewErrorMapper создает ErrorMapper для режима config.ErrorModeCompat или config.ErrorModeTyped
func NewErrorMapper(mode string) *ErrorMapper {
	if mode != config.ErrorModeTyped {
		mode = config.ErrorModeCompat
	}
	return &ErrorMapper{mode: mode}
}

// Status возвращает HTTP-статус для ошибки
func (m *ErrorMapper) Status(err error, fallback int) int {
	if m.mode == config.ErrorModeCompat {
		return fallback
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Respond логирует ошибку и отправляет ответ в едином формате
func (m *ErrorMapper) Respond(c *gin.Context, scope string, err error, fallback int) {
	status := m.Status(err, fallback)
	log.Printf("[%s] request_id=%s status=%d: %v", scope, c.GetString(middleware.RequestIDKey), status, err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// NotFound отвечает на запросы к неизвестным путям
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
}

// MethodNotAllowed отвечает на запросы с неподдерживаемым методом
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed))
}

// Recovery превращает панику в ответ 500
func Recovery(c *gin.Context, recovered any) {
	log.Printf("[Recovery] request_id=%s panic: %v", c.GetString(middleware.RequestIDKey), recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
}
