package services

import (
	"context"
	"encoding/json"
	"testing"

	"trivia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(questions []models.Question) []uint {
	out := make([]uint, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestQuestionServiceAllOrdersByID(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")
	for _, text := range []string{"c", "a", "b"} {
		seedQuestion(t, db, text, "x", 1, 1)
	}

	questions, err := NewQuestionService(db).All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids(questions))
}

func TestQuestionServiceCreateAndCount(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")
	svc := NewQuestionService(db)
	ctx := context.Background()

	difficulty := 4
	question, err := svc.Create(ctx, &CreateQuestionRequest{
		Question:   "What is H2O?",
		Answer:     "Water",
		Category:   1,
		Difficulty: &difficulty,
	})
	require.NoError(t, err)
	assert.NotZero(t, question.ID)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	stored, err := svc.GetByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FormattedQuestion{
		ID: question.ID, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 4,
	}, stored.Format())
}

func TestQuestionServiceCreateUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")

	difficulty := 1
	_, err := NewQuestionService(db).Create(context.Background(), &CreateQuestionRequest{
		Question: "q", Answer: "a", Category: 99, Difficulty: &difficulty,
	})
	assert.Error(t, err)
}

func TestQuestionServiceDelete(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")
	q := seedQuestion(t, db, "Q1", "A1", 1, 1)
	svc := NewQuestionService(db)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, q.ID))

	_, err := svc.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, q.ID), ErrQuestionNotFound)
}

func TestQuestionServiceSearch(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")
	seedQuestion(t, db, "Which PLANET is red?", "Mars", 1, 1)
	seedQuestion(t, db, "Largest planet?", "Jupiter", 1, 2)
	seedQuestion(t, db, "100% of what?", "Everything", 1, 3)
	seedQuestion(t, db, "snake_case or camelCase?", "Both", 1, 3)
	seedQuestion(t, db, "Who painted Édouard's Olympia?", "Manet", 1, 2)
	svc := NewQuestionService(db)
	ctx := context.Background()

	tests := []struct {
		term string
		want []uint
	}{
		{"planet", []uint{1, 2}},
		{"PlAnEt", []uint{1, 2}},
		{"red", []uint{1}},
		{"%", []uint{3}},
		{"_", []uint{4}},
		{"nothing like this", []uint{}},
		{"Édouard", []uint{5}},
		{"ÉDOUARD's olympia", []uint{5}},
		{"", []uint{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := svc.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(found))
		})
	}
}

func TestQuestionServiceByCategory(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science", "Art")
	seedQuestion(t, db, "Q1", "A1", 1, 3)
	seedQuestion(t, db, "Q2", "A2", 2, 2)
	seedQuestion(t, db, "Q3", "A3", 1, 1)

	found, err := NewQuestionService(db).ByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids(found))
}

func TestQuestionServiceQuizCandidates(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science", "Art")
	seedQuestion(t, db, "Q1", "A1", 1, 1)
	seedQuestion(t, db, "Q2", "A2", 2, 1)
	seedQuestion(t, db, "Q3", "A3", 1, 1)
	seedQuestion(t, db, "Q4", "A4", 2, 1)
	svc := NewQuestionService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		category uint
		previous []uint
		want     []uint
	}{
		{"everything", 0, nil, []uint{1, 2, 3, 4}},
		{"category only", 1, nil, []uint{1, 3}},
		{"exclusions only", 0, []uint{1, 4}, []uint{2, 3}},
		{"category and exclusions", 2, []uint{2}, []uint{4}},
		{"all seen", 1, []uint{1, 3}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := svc.QuizCandidates(ctx, tt.category, tt.previous)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(found))
		})
	}
}

func TestNextQuizQuestionRespectsFilters(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science", "Art")
	for i := 0; i < 6; i++ {
		seedQuestion(t, db, "Q", "A", uint(i%2)+1, 1)
	}
	svc := NewQuestionService(db)
	ctx := context.Background()

	previous := []uint{2, 4}
	req := &QuizRequest{PreviousQuestions: previous, QuizCategory: &QuizCategory{ID: 2}}

	for i := 0; i < 50; i++ {
		q, err := svc.NextQuizQuestion(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint(2), q.Category)
		assert.NotContains(t, previous, q.ID)
	}
}

func TestNextQuizQuestionNoCandidates(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db, "Science")
	seedQuestion(t, db, "Q1", "A1", 1, 1)

	_, err := NewQuestionService(db).NextQuizQuestion(context.Background(), &QuizRequest{PreviousQuestions: []uint{1}})
	assert.ErrorIs(t, err, ErrNoQuizCandidates)
}

func TestQuizRequestDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		category uint
		previous []uint
		wantErr  bool
	}{
		{"empty", `{}`, 0, nil, false},
		{"null category", `{"quiz_category": null, "previous_questions": []}`, 0, []uint{}, false},
		{"numeric id", `{"quiz_category": {"id": 3, "type": "Art"}}`, 3, nil, false},
		{"string id", `{"quiz_category": {"id": "4"}, "previous_questions": [1, 2]}`, 4, []uint{1, 2}, false},
		{"zero id means any", `{"quiz_category": {"type": "click", "id": 0}}`, 0, nil, false},
		{"category not an object", `{"quiz_category": "Art"}`, 0, nil, true},
		{"id not numeric", `{"quiz_category": {"id": "art"}}`, 0, nil, true},
		{"previous not ids", `{"previous_questions": ["a"]}`, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req QuizRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, req.CategoryID())
			assert.Equal(t, tt.previous, req.PreviousQuestions)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
}
