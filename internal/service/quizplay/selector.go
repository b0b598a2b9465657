package quizplay

import (
	"fmt"
	"log"
	"math/rand"
	"slices"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
)

// AllCategories - идентификатор категории, означающий "вопросы из всех категорий"
const AllCategories = 0

// Selector выбирает следующий вопрос для игры: случайный из еще не заданных
type Selector struct {
	questionRepo repository.QuestionRepository
	intn         func(n int) int
}

// NewSelector создаёт новый селектор
func NewSelector(questionRepo repository.QuestionRepository) *Selector {
	return &Selector{
		questionRepo: questionRepo,
		intn:         rand.Intn,
	}
}

// Candidates возвращает вопросы, доступные для игры в категории.
// categoryID == AllCategories означает все вопросы без фильтра.
func (s *Selector) Candidates(categoryID int) ([]entity.Question, error) {
	if categoryID == AllCategories {
		return s.questionRepo.ListAll()
	}
	return s.questionRepo.GetByCategory(categoryID)
}

// Remaining возвращает ID кандидатов, которых нет среди previous.
// Это разность множеств: дубликаты и порядок во входных данных не важны.
// Результат отсортирован, чтобы выбор зависел только от генератора.
func Remaining(candidates []entity.Question, previous []int) []uint {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	unique := make(map[uint]struct{}, len(candidates))
	for _, id := range entity.QuestionIDs(candidates) {
		if _, ok := seen[int(id)]; ok {
			continue
		}
		unique[id] = struct{}{}
	}

	remaining := make([]uint, 0, len(unique))
	for id := range unique {
		remaining = append(remaining, id)
	}
	slices.Sort(remaining)
	return remaining
}

// NextQuestion выбирает равновероятно один вопрос из незаданных.
// Возвращает nil, nil, если вопросы в категории закончились.
func (s *Selector) NextQuestion(categoryID int, previous []int) (*entity.Question, error) {
	candidates, err := s.Candidates(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates for category %d: %w", categoryID, err)
	}

	remaining := Remaining(candidates, previous)
	if len(remaining) == 0 {
		log.Printf("[QuizSelector] Category %d exhausted: %d candidates, %d previous", categoryID, len(candidates), len(previous))
		return nil, nil
	}

	chosenID := remaining[s.intn(len(remaining))]

	question, err := s.questionRepo.GetByID(chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question %d: %w", chosenID, err)
	}
	return question, nil
}
