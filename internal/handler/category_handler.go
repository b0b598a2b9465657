package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	errMapper       *ErrorMapper
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
	errMapper *ErrorMapper,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		errMapper:       errMapper,
	}
}

// GetCategories возвращает все категории в виде {id: type}
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListAll()
	if err != nil {
		h.errMapper.Respond(c, "CategoryHandler", err, http.StatusInternalServerError)
		return
	}

	categoryMap := entity.CategoryMap(categories)
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:         true,
		Categories:      categoryMap,
		TotalCategories: len(categoryMap),
	})
}

// GetCategoryQuestions возвращает все вопросы категории без пагинации
// GET /categories/:id/questions
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := int(c.MustGet("categoryID").(uint)) // Получаем из контекста

	questions, err := h.questionService.GetByCategory(categoryID)
	if err != nil {
		h.errMapper.Respond(c, "CategoryHandler", err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       entity.FormatQuestions(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}
