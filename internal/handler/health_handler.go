package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
)

// HealthHandler сообщает о доступности сервиса и хранилища
type HealthHandler struct {
	ping func() error
}

// NewHealthHandler создает обработчик проверки здоровья. ping проверяет подключение к БД.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(); err != nil {
		log.Printf("[HealthHandler] Database ping failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
