package helper

import "strconv"

// QuestionsPerPage - фиксированный размер страницы
const QuestionsPerPage = 10

// ParsePage разбирает номер страницы из query-параметра.
// Пустое, нечисловое или меньшее 1 значение дает первую страницу.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageBounds возвращает границы окна [start, end) для страницы page внутри
// последовательности длины total. Для страницы за пределами данных start == end.
func PageBounds(page, total int) (start, end int) {
	if page < 1 {
		page = 1
	}
	// Сравнение до умножения: (page-1)*QuestionsPerPage может переполнить int
	if page-1 > total/QuestionsPerPage {
		return total, total
	}
	start = (page - 1) * QuestionsPerPage
	end = start + QuestionsPerPage
	if end > total {
		end = total
	}
	return start, end
}

// Paginate возвращает страницу page из items. Всегда возвращает не-nil слайс.
func Paginate[T any](items []T, page int) []T {
	start, end := PageBounds(page, len(items))
	result := make([]T, end-start)
	copy(result, items[start:end])
	return result
}
