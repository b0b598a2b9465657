package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
	errMapper   *ErrorMapper
}

// NewQuizHandler создает новый обработчик игры
func NewQuizHandler(quizService *service.QuizService, errMapper *ErrorMapper) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		errMapper:   errMapper,
	}
}

// PlayQuiz возвращает случайный еще не заданный вопрос категории.
// Если вопросы закончились, в поле question возвращается false.
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errMapper.Respond(c, "QuizHandler", fmt.Errorf("%w: %v", apperrors.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	categoryID, previous, err := req.Parse()
	if err != nil {
		h.errMapper.Respond(c, "QuizHandler", fmt.Errorf("%w: %v", apperrors.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(categoryID, previous)
	if err != nil {
		h.errMapper.Respond(c, "QuizHandler", err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
