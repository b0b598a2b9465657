package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	errMapper       *ErrorMapper
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
	errMapper *ErrorMapper,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		errMapper:       errMapper,
	}
}

// ListQuestions возвращает страницу вопросов, общее количество и все категории
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := helper.ParsePage(c.Query("page"))

	questions, err := h.questionService.ListAll()
	if err != nil {
		h.errMapper.Respond(c, "QuestionHandler", err, http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryService.ListAll()
	if err != nil {
		h.errMapper.Respond(c, "QuestionHandler", err, http.StatusInternalServerError)
		return
	}

	// current_category строится по "сырым" строкам из окна страницы
	start, end := helper.PageBounds(page, len(questions))
	currentCategory := make([]int, 0, end-start)
	for _, q := range questions[start:end] {
		currentCategory = append(currentCategory, q.Category)
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       helper.Paginate(entity.FormatQuestions(questions), page),
		TotalQuestions:  len(questions),
		Categories:      entity.CategoryMap(categories),
		CurrentCategory: currentCategory,
	})
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	deleted, total, err := h.questionService.Delete(questionID)
	if err != nil {
		h.errMapper.Respond(c, "QuestionHandler", err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        deleted.Format(),
		TotalQuestions: total,
	})
}

// CreateQuestion создает вопрос и возвращает запрошенную страницу обновленного списка
// POST /questions?page=N
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errMapper.Respond(c, "QuestionHandler", fmt.Errorf("%w: %v", apperrors.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	created, questions, err := h.questionService.Create(entity.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.errMapper.Respond(c, "QuestionHandler", err, http.StatusUnprocessableEntity)
		return
	}

	page := helper.ParsePage(c.Query("page"))
	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      helper.Paginate(entity.FormatQuestions(questions), page),
		TotalQuestions: len(questions),
	})
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /search?page=N
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errMapper.Respond(c, "QuestionHandler", fmt.Errorf("%w: %v", apperrors.ErrValidation, err), http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		h.errMapper.Respond(c, "QuestionHandler", err, http.StatusUnprocessableEntity)
		return
	}

	page := helper.ParsePage(c.Query("page"))
	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Questions:      helper.Paginate(entity.FormatQuestions(questions), page),
		TotalQuestions: len(questions),
	})
}
