package services

const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. A page outside the range,
// including any page below 1, is empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 > len(items)/QuestionsPerPage {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))

	return items[start:end]
}
