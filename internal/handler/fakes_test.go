package handler

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/service"
)

// fakeQuestionRepo - репозиторий в памяти, повторяющий поведение postgres.QuestionRepo
type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions []entity.Question
	nextID    uint
	err       error // если задано, все методы возвращают эту ошибку
}

func newFakeQuestionRepo(n int) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{nextID: 1}
	for i := 0; i < n; i++ {
		repo.questions = append(repo.questions, entity.Question{
			ID:         repo.nextID,
			Question:   fmt.Sprintf("Question number %d?", repo.nextID),
			Answer:     fmt.Sprintf("Answer %d", repo.nextID),
			Category:   int(repo.nextID%6) + 1,
			Difficulty: int(repo.nextID%5) + 1,
		})
		repo.nextID++
	}
	return repo
}

// Create повторяет ограничения таблицы questions: NOT NULL для всех полей и CHECK на пустой текст
func (r *fakeQuestionRepo) Create(input entity.NewQuestion) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if input.Question == nil || input.Answer == nil || input.Category == nil || input.Difficulty == nil {
		return nil, fmt.Errorf("%w: null value violates not-null constraint", apperrors.ErrConstraintViolation)
	}
	if *input.Question == "" || *input.Answer == "" {
		return nil, fmt.Errorf("%w: questions_question_not_empty", apperrors.ErrConstraintViolation)
	}
	question := entity.Question{
		ID:         r.nextID,
		Question:   *input.Question,
		Answer:     *input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	}
	r.nextID++
	r.questions = append(r.questions, question)
	return &question, nil
}

// add кладет вопрос напрямую, минуя ограничения, и присваивает ему ID
func (r *fakeQuestionRepo) add(q entity.Question) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, q)
	return q.ID
}

func (r *fakeQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, q := range r.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeQuestionRepo) filter(keep func(entity.Question) bool) ([]entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	result := []entity.Question{}
	for _, q := range r.questions {
		if keep(q) {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *fakeQuestionRepo) ListAll() ([]entity.Question, error) {
	return r.filter(func(entity.Question) bool { return true })
}

func (r *fakeQuestionRepo) Count() (int64, error) {
	all, err := r.ListAll()
	return int64(len(all)), err
}

func (r *fakeQuestionRepo) Search(term string) ([]entity.Question, error) {
	needle := strings.ToLower(term)
	return r.filter(func(q entity.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	})
}

func (r *fakeQuestionRepo) GetByCategory(categoryID int) ([]entity.Question, error) {
	return r.filter(func(q entity.Question) bool { return q.Category == categoryID })
}

// fakeCategoryRepo - категории в памяти
type fakeCategoryRepo struct {
	categories []entity.Category
	err        error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}}
}

func (r *fakeCategoryRepo) ListAll() ([]entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories, nil
}

// testEnv - собранное приложение поверх фейковых репозиториев
type testEnv struct {
	router     *gin.Engine
	questions  *fakeQuestionRepo
	categories *fakeCategoryRepo
	pingErr    error
}

func newTestEnv(seed int, errorMode string) *testEnv {
	env := &testEnv{
		questions:  newFakeQuestionRepo(seed),
		categories: newFakeCategoryRepo(),
	}

	errMapper := NewErrorMapper(errorMode)
	questionService := service.NewQuestionService(env.questions)
	categoryService := service.NewCategoryService(env.categories)
	quizService := service.NewQuizService(env.questions)

	env.router = NewRouter(RouterDeps{
		Questions:  NewQuestionHandler(questionService, categoryService, errMapper),
		Categories: NewCategoryHandler(categoryService, questionService, errMapper),
		Quizzes:    NewQuizHandler(quizService, errMapper),
		Export:     NewExportHandler(questionService, categoryService, errMapper),
		Health:     NewHealthHandler(func() error { return env.pingErr }),
	})
	env.router.GET("/test/panic", func(c *gin.Context) {
		panic("boom")
	})
	return env
}

// errorShape - ожидаемое тело ответа об ошибке после json.Unmarshal в map
func errorShape(status int) map[string]interface{} {
	messages := map[int]string{
		http.StatusBadRequest:          "Bad request",
		http.StatusNotFound:            "Not found",
		http.StatusMethodNotAllowed:    "Method not allowed",
		http.StatusUnprocessableEntity: "Unprocessable",
		http.StatusInternalServerError: "Internal Server Error",
	}
	return map[string]interface{}{
		"success": false,
		"error":   float64(status),
		"message": messages[status],
	}
}
