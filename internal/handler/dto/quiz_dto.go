package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuizRequest - тело POST /quizzes.
// Поля разбираются вручную в Parse: клиенты присылают id и числом, и строкой.
type QuizRequest struct {
	QuizCategory      json.RawMessage `json:"quiz_category"`
	PreviousQuestions json.RawMessage `json:"previous_questions"`
}

// quizCategoryPayload - объект категории в запросе игры (поле type клиенту нужно, серверу нет)
type quizCategoryPayload struct {
	ID interface{} `json:"id"`
}

// Parse извлекает ID категории и список заданных вопросов.
// Любая ошибка формы запроса возвращается как error.
func (r *QuizRequest) Parse() (categoryID int, previous []int, err error) {
	if isAbsent(r.QuizCategory) {
		return 0, nil, fmt.Errorf("quiz_category is required")
	}
	var category quizCategoryPayload
	if err := json.Unmarshal(r.QuizCategory, &category); err != nil {
		return 0, nil, fmt.Errorf("quiz_category must be an object: %w", err)
	}
	if category.ID == nil {
		return 0, nil, fmt.Errorf("quiz_category.id is required")
	}
	categoryID, err = toInt(category.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("quiz_category.id is not an integer: %w", err)
	}

	if isAbsent(r.PreviousQuestions) {
		return 0, nil, fmt.Errorf("previous_questions is required")
	}
	var rawPrevious []interface{}
	if err := json.Unmarshal(r.PreviousQuestions, &rawPrevious); err != nil {
		return 0, nil, fmt.Errorf("previous_questions must be a list: %w", err)
	}
	previous = make([]int, 0, len(rawPrevious))
	for i, v := range rawPrevious {
		id, err := toInt(v)
		if err != nil {
			return 0, nil, fmt.Errorf("previous_questions[%d] is not an integer: %w", i, err)
		}
		previous = append(previous, id)
	}
	return categoryID, previous, nil
}

// toInt приводит значение из JSON к int.
// Строки разбираются только как десятичные числа: "010" дает 10, а не 8.
func toInt(v interface{}) (int, error) {
	if s, ok := v.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return cast.ToIntE(v)
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// QuizResponse - ответ POST /quizzes.
// Question содержит вопрос либо false, если вопросы закончились.
type QuizResponse struct {
	Success  bool        `json:"success"`
	Question interface{} `json:"question"`
}

// NewQuizResponse создает ответ игры
func NewQuizResponse(question *entity.Question) QuizResponse {
	if question == nil {
		return QuizResponse{Success: true, Question: false}
	}
	return QuizResponse{Success: true, Question: question.Format()}
}
