package models

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	Category   uint   `json:"category" gorm:"column:category;not null;index"`
	Difficulty int    `json:"difficulty" gorm:"not null"`

	// Relationships
	CategoryRef *Category `json:"-" gorm:"foreignKey:Category"`
}

// FormattedQuestion is the wire shape of a question.
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, q.Format())
	}
	return formatted
}
