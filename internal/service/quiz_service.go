package service

import (
	"fmt"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	"github.com/yourusername/trivia-questions/internal/service/quizplay"
)

// QuizService обслуживает режим игры: выдает следующий незаданный вопрос
type QuizService struct {
	selector *quizplay.Selector
}

// NewQuizService создает новый сервис игры
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		selector: quizplay.NewSelector(questionRepo),
	}
}

// NextQuestion возвращает случайный вопрос категории, которого нет в previous.
// categoryID == 0 означает все категории. Если вопросы закончились, возвращает nil без ошибки.
func (s *QuizService) NextQuestion(categoryID int, previous []int) (*entity.Question, error) {
	question, err := s.selector.NextQuestion(categoryID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to select next question: %w", err)
	}
	return question, nil
}
