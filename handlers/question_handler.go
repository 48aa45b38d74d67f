package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

// Broadcaster publishes catalogue events to live clients.
type Broadcaster interface {
	Broadcast(messageType string, payload any)
}

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	events          Broadcaster
	logger          *slog.Logger
}

func NewQuestionHandler(
	questionService *services.QuestionService,
	categoryService *services.CategoryService,
	events Broadcaster,
	logger *slog.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		events:          events,
		logger:          logger,
	}
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.All(ctx)
	if err != nil {
		h.logger.Error("failed to list questions", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := services.Paginate(models.FormatQuestions(questions), queryPage(c))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	labels, err := h.categoryService.Labels(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                   true,
		"questions":                 current,
		"number_of_total_questions": len(questions),
		"current_category":          labels,
		"categories":                labels,
	})
}

// DeleteQuestion answers 422 for an id that names no question: the
// request is well formed but there is nothing to act on.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := pathID(c, "question_id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	err := h.questionService.Delete(c.Request.Context(), questionID)
	if errors.Is(err, services.ErrQuestionNotFound) {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete question", "question_id", questionID, "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	h.publish(services.EventQuestionDeleted, gin.H{"id": questionID})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": questionID,
	})
}

// CreateQuestion answers 404 for a body missing any of the four fields,
// which is what existing clients expect.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMalformedBody(err) {
			abortWithError(c, http.StatusBadRequest)
			return
		}
		abortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()

	question, err := h.questionService.Create(ctx, &req)
	if err != nil {
		h.logger.Warn("question rejected by store", "category", req.Category, "error", err)
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.questionService.All(ctx)
	if err != nil {
		h.logger.Error("failed to list questions", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	h.publish(services.EventQuestionCreated, question.Format())

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         question.ID,
		"questions":       services.Paginate(models.FormatQuestions(questions), queryPage(c)),
		"total_questions": len(questions),
	})
}

func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	ctx := c.Request.Context()

	found, err := h.questionService.Search(ctx, *req.SearchTerm)
	if err != nil {
		h.logger.Error("failed to search questions", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(found) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	total, err := h.questionService.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count questions", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	labels, err := h.categoryService.Labels(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(labels) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        models.FormatQuestions(found),
		"total_questions":  total,
		"current_category": labels,
	})
}

func (h *QuestionHandler) publish(eventType string, payload any) {
	if h.events == nil {
		return
	}
	h.events.Broadcast(eventType, payload)
}
