package handlers

import (
	"log/slog"
	"net/http"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	logger          *slog.Logger
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		logger:          logger,
	}
}

// GetCategories lists the category labels in id order.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	labels, err := h.categoryService.Labels(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": labels,
	})
}

// GetCategoryQuestions pages through the questions of one category.
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.ByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.logger.Error("failed to list category questions", "category_id", categoryID, "error", err)
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := services.Paginate(models.FormatQuestions(questions), queryPage(c))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        current,
		"total_questions":  len(questions),
		"current_category": categoryID,
	})
}
