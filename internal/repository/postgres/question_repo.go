package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос. Поля, равные nil, исключаются из INSERT,
// поэтому решение о них принимают ограничения NOT NULL таблицы.
func (r *QuestionRepo) Create(input entity.NewQuestion) (*entity.Question, error) {
	question := &entity.Question{}
	if input.Question != nil {
		question.Question = *input.Question
	}
	if input.Answer != nil {
		question.Answer = *input.Answer
	}
	if input.Category != nil {
		question.Category = *input.Category
	}
	if input.Difficulty != nil {
		question.Difficulty = *input.Difficulty
	}

	tx := r.db
	if omit := omittedColumns(input); len(omit) > 0 {
		tx = tx.Omit(omit...)
	}
	if err := tx.Create(question).Error; err != nil {
		return nil, translateError(err)
	}
	return question, nil
}

// omittedColumns возвращает колонки, значения для которых не переданы
func omittedColumns(input entity.NewQuestion) []string {
	var omit []string
	if input.Question == nil {
		omit = append(omit, "question")
	}
	if input.Answer == nil {
		omit = append(omit, "answer")
	}
	if input.Category == nil {
		omit = append(omit, "category")
	}
	if input.Difficulty == nil {
		omit = append(omit, "difficulty")
	}
	return omit
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

// Delete удаляет вопрос. Отсутствие строки считается ошибкой ErrNotFound.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ListAll возвращает все вопросы в порядке вставки (по id)
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, translateError(err)
}

// Search выполняет поиск подстроки без учета регистра
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", likePattern(term)).Order("id").Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы указанной категории
func (r *QuestionRepo) GetByCategory(categoryID int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// likePattern строит шаблон %term% для ILIKE
func likePattern(term string) string {
	return "%" + term + "%"
}
