package quizplay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(input entity.NewQuestion) (*entity.Question, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) Search(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(categoryID int) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// newTestSelector создает селектор с детерминированным "генератором"
func newTestSelector(repo *MockQuestionRepository, intn func(int) int) *Selector {
	return &Selector{questionRepo: repo, intn: intn}
}

func TestRemaining_SetDifference(t *testing.T) {
	candidates := []entity.Question{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	remaining := Remaining(candidates, []int{2, 4, 4, 99})

	assert.Equal(t, []uint{1, 3}, remaining)
}

func TestRemaining_AllSeen(t *testing.T) {
	candidates := []entity.Question{{ID: 5}, {ID: 6}}

	remaining := Remaining(candidates, []int{6, 5})

	assert.Empty(t, remaining)
}

func TestRemaining_DuplicateCandidates(t *testing.T) {
	candidates := []entity.Question{{ID: 8}, {ID: 8}, {ID: 9}}

	remaining := Remaining(candidates, nil)

	assert.Equal(t, []uint{8, 9}, remaining)
}

func TestSelector_NextQuestion_AllCategoriesUsesListAll(t *testing.T) {
	// Arrange
	repo := new(MockQuestionRepository)
	repo.On("ListAll").Return([]entity.Question{
		{ID: 1, Category: 1},
		{ID: 2, Category: 5},
	}, nil)
	repo.On("GetByID", uint(2)).Return(&entity.Question{ID: 2, Category: 5}, nil)

	selector := newTestSelector(repo, func(n int) int { return n - 1 })

	// Act
	question, err := selector.NextQuestion(AllCategories, []int{})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(2), question.ID)
	repo.AssertNotCalled(t, "GetByCategory", mock.Anything)
	repo.AssertExpectations(t)
}

func TestSelector_NextQuestion_FiltersByCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", 3).Return([]entity.Question{{ID: 10, Category: 3}, {ID: 11, Category: 3}}, nil)
	repo.On("GetByID", uint(11)).Return(&entity.Question{ID: 11, Category: 3}, nil)

	selector := newTestSelector(repo, func(n int) int {
		assert.Equal(t, 1, n, "Кандидат должен остаться только один")
		return 0
	})

	question, err := selector.NextQuestion(3, []int{10})

	require.NoError(t, err)
	assert.Equal(t, uint(11), question.ID)
	repo.AssertNotCalled(t, "ListAll")
	repo.AssertExpectations(t)
}

func TestSelector_NextQuestion_Exhausted(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", 1).Return([]entity.Question{{ID: 20}, {ID: 21}}, nil)

	selector := newTestSelector(repo, func(int) int {
		t.Fatal("генератор не должен вызываться, если вопросов не осталось")
		return 0
	})

	question, err := selector.NextQuestion(1, []int{21, 20})

	assert.NoError(t, err)
	assert.Nil(t, question)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestSelector_NextQuestion_EmptyCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", 42).Return([]entity.Question{}, nil)

	selector := newTestSelector(repo, nil)

	question, err := selector.NextQuestion(42, nil)

	assert.NoError(t, err)
	assert.Nil(t, question)
}

func TestSelector_NextQuestion_StoreError(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("ListAll").Return(nil, errors.New("connection refused"))

	selector := newTestSelector(repo, nil)

	question, err := selector.NextQuestion(AllCategories, nil)

	assert.Error(t, err)
	assert.Nil(t, question)
}

func TestSelector_NextQuestion_VanishedQuestion(t *testing.T) {
	repo := new(MockQuestionRepository)
	repo.On("GetByCategory", 2).Return([]entity.Question{{ID: 30}}, nil)
	repo.On("GetByID", uint(30)).Return(nil, apperrors.ErrNotFound)

	selector := newTestSelector(repo, func(int) int { return 0 })

	_, err := selector.NextQuestion(2, nil)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSelector_NextQuestion_ResultIsMemberOfRemaining(t *testing.T) {
	// Настоящий генератор: проверяем только принадлежность множеству
	repo := new(MockQuestionRepository)
	candidates := []entity.Question{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	repo.On("ListAll").Return(candidates, nil)
	for _, q := range candidates {
		repo.On("GetByID", q.ID).Return(&entity.Question{ID: q.ID}, nil).Maybe()
	}

	selector := NewSelector(repo)
	allowed := []uint{1, 3, 5}

	for i := 0; i < 50; i++ {
		question, err := selector.NextQuestion(AllCategories, []int{2, 4})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Contains(t, allowed, question.ID)
	}
}
