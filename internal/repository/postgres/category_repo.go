package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListAll возвращает все категории, упорядоченные по id
func (r *CategoryRepo) ListAll() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, translateError(err)
	}
	return categories, nil
}
