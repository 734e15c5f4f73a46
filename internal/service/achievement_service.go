package service

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
)

type achievementRepository interface {
	List(ctx context.Context, featuredOnly bool, limit int) ([]models.Achievement, error)
}

// AchievementService serves the wall-of-champions entries.
type AchievementService struct {
	repo   achievementRepository
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

func NewAchievementService(repo achievementRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *AchievementService {
	return &AchievementService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// List returns achievements, newest first. featuredOnly narrows to the
// homepage highlights; limit caps the result (0 means no cap).
func (s *AchievementService) List(ctx context.Context, featuredOnly bool, limit int) ([]models.Achievement, error) {
	if limit < 0 {
		limit = 0
	}
	key := cacheKey(featuredOnly, limit)
	var cached []models.Achievement
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	achievements, err := s.repo.List(ctx, featuredOnly, limit)
	if err != nil {
		s.logger.Error("failed to load achievements", zap.Error(err))
		return nil, appErrors.Wrap(err, "ACHIEVEMENTS_LOAD_FAILED", http.StatusInternalServerError, "Failed to load achievements")
	}

	s.cache.SetJSON(ctx, key, achievements, s.ttl)
	return achievements, nil
}

func cacheKey(featuredOnly bool, limit int) string {
	if featuredOnly {
		return "achievements:featured:" + strconv.Itoa(limit)
	}
	return "achievements:all:" + strconv.Itoa(limit)
}
