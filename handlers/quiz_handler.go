package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	questionService *services.QuestionService
	logger          *slog.Logger
}

func NewQuizHandler(questionService *services.QuestionService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		questionService: questionService,
		logger:          logger,
	}
}

// NextQuestion serves a random question the player has not seen yet,
// optionally restricted to one category.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req services.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMalformedBody(err) {
			abortWithError(c, http.StatusBadRequest)
			return
		}
		abortWithError(c, http.StatusNotFound)
		return
	}

	question, err := h.questionService.NextQuizQuestion(c.Request.Context(), &req)
	if err != nil {
		if !errors.Is(err, services.ErrNoQuizCandidates) {
			h.logger.Error("failed to pick quiz question", "error", err)
		}
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question.Format(),
	})
}
