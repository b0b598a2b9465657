package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// NewQuestion - данные для вставки вопроса.
// nil означает, что поле не передано: колонка не попадает в INSERT и получает NULL.
type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// FormattedQuestion - представление вопроса, которое отдается клиенту
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format возвращает клиентское представление вопроса
func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatQuestions форматирует список вопросов, сохраняя порядок
func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, len(questions))
	for i := range questions {
		formatted[i] = questions[i].Format()
	}
	return formatted
}

// QuestionIDs возвращает ID вопросов в исходном порядке
func QuestionIDs(questions []Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
