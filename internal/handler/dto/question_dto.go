package dto

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CreateQuestionRequest - тело POST /questions.
// Указатели позволяют отличить отсутствующее поле от нулевого значения.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// SearchRequest - тело POST /search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// CategoriesResponse - ответ GET /categories
type CategoriesResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// QuestionListResponse - ответ GET /questions
type QuestionListResponse struct {
	Success         bool                       `json:"success"`
	Questions       []entity.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions"`
	Categories      map[uint]string            `json:"categories"`
	CurrentCategory []int                      `json:"current_category"`
}

// DeleteQuestionResponse - ответ DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success        bool                     `json:"success"`
	Deleted        entity.FormattedQuestion `json:"deleted"`
	TotalQuestions int64                    `json:"total_questions"`
}

// CreateQuestionResponse - ответ POST /questions
type CreateQuestionResponse struct {
	Success        bool                       `json:"success"`
	Created        uint                       `json:"created"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// SearchResponse - ответ POST /search
type SearchResponse struct {
	Success        bool                       `json:"success"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// CategoryQuestionsResponse - ответ GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool                       `json:"success"`
	Questions       []entity.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions"`
	CurrentCategory int                        `json:"current_category"`
}
