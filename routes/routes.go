package routes

import (
	"log/slog"
	"net/http"

	"trivia/handlers"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the API is open to any origin, see middleware.CORS
	},
}

func SetupRoutes(
	router *gin.Engine,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	hub *services.Hub,
	db *gorm.DB,
	logger *slog.Logger,
) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	// Existing clients call the root paths; /api mirrors them.
	registerTriviaRoutes(router, categoryHandler, questionHandler, quizHandler)
	registerTriviaRoutes(router.Group("/api"), categoryHandler, questionHandler, quizHandler)

	// Live question catalogue events
	router.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade has already answered the client.
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}
		hub.RegisterClient(conn)
	})

	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logger.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":            "ok",
			"websocket_clients": hub.ClientCount(),
		})
	})
}

func registerTriviaRoutes(
	r gin.IRoutes,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
) {
	r.GET("/categories", categoryHandler.GetCategories)
	r.GET("/categories/:category_id/questions", categoryHandler.GetCategoryQuestions)

	r.GET("/questions", questionHandler.GetQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.POST("/questions/search", questionHandler.SearchQuestions)
	r.DELETE("/questions/:question_id", questionHandler.DeleteQuestion)

	r.POST("/quizzes", quizHandler.NextQuestion)
}
