package services

import (
	"io"
	"log/slog"
	"testing"

	"trivia/config"
	"trivia/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(&config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: "file::memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, types ...string) {
	t.Helper()
	for i, typ := range types {
		require.NoError(t, db.Create(&models.Category{ID: uint(i + 1), Type: typ}).Error)
	}
}

func seedQuestion(t *testing.T, db *gorm.DB, text, answer string, category uint, difficulty int) models.Question {
	t.Helper()
	q := models.Question{Question: text, Answer: answer, Category: category, Difficulty: difficulty}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
