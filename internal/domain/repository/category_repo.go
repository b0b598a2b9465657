package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	ListAll() ([]entity.Category, error)
}
