package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia/config"
	"trivia/handlers"
	"trivia/middleware"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := config.NewLogger(cfg)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize Redis; nil when the category cache is off
	redisClient := config.InitRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize services
	categoryService := services.NewCategoryService(db, redisClient, cfg.CategoryCacheTTL, logger)
	questionService := services.NewQuestionService(db)

	// Categories may have been reseeded while we were down.
	if err := categoryService.InvalidateCache(ctx); err != nil {
		logger.Warn("failed to clear category cache", "error", err)
	}

	hub := services.NewHub(logger)
	go hub.Run(ctx)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, logger)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, hub, logger)
	quizHandler := handlers.NewQuizHandler(questionService, logger)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS())

	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler, hub, db, logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "driver", cfg.DBDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
