package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"trivia/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuizCandidates = errors.New("no quiz questions left")
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	Question   string    `json:"question" binding:"required"`
	Answer     string    `json:"answer" binding:"required"`
	Category   NumericID `json:"category" binding:"required"`
	Difficulty *int      `json:"difficulty" binding:"required"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

type QuizCategory struct {
	ID   NumericID `json:"id"`
	Type string    `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoryID is zero when the request asks for any category. An explicit
// id of 0 also means any category: the web client sends {"id": 0} for its
// "ALL" choice, and no category has id 0.
func (r *QuizRequest) CategoryID() uint {
	if r.QuizCategory == nil {
		return 0
	}
	return uint(r.QuizCategory.ID)
}

// All returns every question ordered by id.
func (s *QuestionService) All(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func (s *QuestionService) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *QuestionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: *req.Difficulty,
	}

	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

// Delete removes the question, returning ErrQuestionNotFound when no row
// has that id.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Question{}, id).Error; err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// Search matches term case-insensitively anywhere in the question text.
// Wildcard characters in term match literally. Both sides go through the
// store's LOWER; sqlite folds ASCII only, so there a term still matches its
// exact spelling.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + escapeLike(term) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) ByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// QuizCandidates returns the questions in categoryID (any category when
// zero) whose ids are not in previous.
func (s *QuestionService) QuizCandidates(ctx context.Context, categoryID uint, previous []uint) ([]models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var questions []models.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	return questions, nil
}

// NextQuizQuestion picks one candidate uniformly at random.
func (s *QuestionService) NextQuizQuestion(ctx context.Context, req *QuizRequest) (*models.Question, error) {
	candidates, err := s.QuizCandidates(ctx, req.CategoryID(), req.PreviousQuestions)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoQuizCandidates
	}

	return &candidates[rand.IntN(len(candidates))], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
