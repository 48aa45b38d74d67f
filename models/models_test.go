package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionFormat(t *testing.T) {
	q := Question{ID: 4, Question: "Q", Answer: "A", Category: 2, Difficulty: 5, CategoryRef: &Category{ID: 2, Type: "Art"}}

	data, err := json.Marshal(q.Format())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"question":"Q","answer":"A","category":2,"difficulty":5}`, string(data))
}

func TestFormatQuestionsEmpty(t *testing.T) {
	data, err := json.Marshal(FormatQuestions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLabels(t *testing.T) {
	categories := []Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	assert.Equal(t, []string{"Science", "Art"}, Labels(categories))
}
