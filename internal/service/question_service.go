package service

import (
	"fmt"
	"log"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// ListAll возвращает все вопросы в порядке id
func (s *QuestionService) ListAll() ([]entity.Question, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// Create сохраняет вопрос и возвращает его вместе с заново прочитанным списком всех вопросов.
// Поля без значения не подставляются: их судьбу решают ограничения хранилища.
func (s *QuestionService) Create(input entity.NewQuestion) (*entity.Question, []entity.Question, error) {
	question, err := s.questionRepo.Create(input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create question: %w", err)
	}
	log.Printf("[QuestionService] Question #%d created in category %d", question.ID, question.Category)

	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload questions after create: %w", err)
	}
	return question, questions, nil
}

// Delete удаляет вопрос по ID и возвращает удаленный вопрос и новое общее количество
func (s *QuestionService) Delete(id uint) (*entity.Question, int64, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get question %d: %w", id, err)
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return nil, 0, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	log.Printf("[QuestionService] Question #%d deleted", id)

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return question, total, nil
}

// Search ищет вопросы по подстроке без учета регистра.
// Отсутствующий термин (nil) не является ошибкой и дает пустой результат.
func (s *QuestionService) Search(term *string) ([]entity.Question, error) {
	if term == nil {
		return []entity.Question{}, nil
	}
	questions, err := s.questionRepo.Search(*term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории (без пагинации)
func (s *QuestionService) GetByCategory(categoryID int) ([]entity.Question, error) {
	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}
