package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create вставляет вопрос и возвращает его с присвоенным ID.
	// Отсутствующие поля передаются в хранилище как NULL.
	Create(input entity.NewQuestion) (*entity.Question, error)
	GetByID(id uint) (*entity.Question, error)
	Delete(id uint) error

	// ListAll возвращает все вопросы, упорядоченные по id
	ListAll() ([]entity.Question, error)
	Count() (int64, error)

	// Search ищет вопросы, текст которых содержит term (без учета регистра)
	Search(term string) ([]entity.Question, error)
	GetByCategory(categoryID int) ([]entity.Question, error)
}
