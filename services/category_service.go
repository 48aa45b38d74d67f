package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trivia/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const categoryCacheKey = "trivia:categories"

// CategoryService reads categories. Categories are seeded externally and
// never written here, so the ordered label list is safe to cache.
type CategoryService struct {
	db     *gorm.DB
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCategoryService builds the service. A nil redis client disables caching.
// Cached labels are served for up to ttl, so an external reseed shows up
// only after the entry expires or InvalidateCache runs (main calls it at
// startup). Empty label lists are never cached.
func NewCategoryService(db *gorm.DB, redis *redis.Client, ttl time.Duration, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		db:     db,
		redis:  redis,
		ttl:    ttl,
		logger: logger,
	}
}

// All returns every category ordered by id.
func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Labels returns the category types in id order, from the cache when
// possible.
func (s *CategoryService) Labels(ctx context.Context) ([]string, error) {
	if labels := s.cachedLabels(ctx); labels != nil {
		return labels, nil
	}

	categories, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	labels := models.Labels(categories)
	if len(labels) > 0 {
		s.storeLabels(ctx, labels)
	}
	return labels, nil
}

// InvalidateCache drops the cached labels, e.g. after an external reseed.
func (s *CategoryService) InvalidateCache(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, categoryCacheKey).Err()
}

func (s *CategoryService) cachedLabels(ctx context.Context) []string {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("category cache read failed", "error", err)
		}
		return nil
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		s.logger.Warn("category cache entry is corrupt", "error", err)
		return nil
	}
	return labels
}

func (s *CategoryService) storeLabels(ctx context.Context, labels []string) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(labels)
	if err != nil {
		s.logger.Warn("failed to encode category labels", "error", err)
		return
	}

	if err := s.redis.Set(ctx, categoryCacheKey, data, s.ttl).Err(); err != nil {
		s.logger.Warn("category cache write failed", "error", err)
	}
}
