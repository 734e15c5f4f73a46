package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

type reviewRepository interface {
	ListFeatured(ctx context.Context) ([]models.Review, error)
	Aggregate(ctx context.Context) (*models.ReviewAggregate, error)
}

const (
	starFull  = "full"
	starHalf  = "half"
	starEmpty = "empty"
)

// ReviewService assembles the testimonial carousel payload.
type ReviewService struct {
	repo       reviewRepository
	cache      *CacheService
	ttl        time.Duration
	profileURL string
	logger     *zap.Logger
}

func NewReviewService(repo reviewRepository, cache *CacheService, ttl time.Duration, profileURL string, logger *zap.Logger) *ReviewService {
	return &ReviewService{repo: repo, cache: cache, ttl: ttl, profileURL: profileURL, logger: logger}
}

// Featured returns the display-ready review payload. Reviews change
// rarely, so the payload is cached aggressively.
func (s *ReviewService) Featured(ctx context.Context) (*models.ReviewsPayload, error) {
	const key = "reviews:featured"
	var cached models.ReviewsPayload
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	reviews, err := s.repo.ListFeatured(ctx)
	if err != nil {
		s.logger.Error("failed to load reviews", zap.Error(err))
		return s.fallback(ctx, key), nil
	}
	aggregate, err := s.repo.Aggregate(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate reviews", zap.Error(err))
		return s.fallback(ctx, key), nil
	}

	payload := &models.ReviewsPayload{
		AggregateRating:   *aggregate,
		Reviews:           make([]models.ReviewItem, 0, len(reviews)),
		GoogleBusinessURL: s.profileURL,
	}
	for _, review := range reviews {
		payload.Reviews = append(payload.Reviews, models.ReviewItem{
			ID:            review.ID,
			Author:        review.Author,
			AuthorInitial: authorInitial(review.Author),
			Rating:        review.Rating,
			Stars:         Stars(review.Rating),
			Text:          review.Text,
			Date:          review.Date.Format("January 2006"),
		})
	}

	s.cache.SetJSON(ctx, key, payload, s.ttl)
	return payload, nil
}

// fallback returns an empty payload when the store is unreachable and
// caches it for an hour so a flapping database is not hammered on
// every page load.
func (s *ReviewService) fallback(ctx context.Context, key string) *models.ReviewsPayload {
	payload := &models.ReviewsPayload{
		AggregateRating:   models.ReviewAggregate{},
		Reviews:           []models.ReviewItem{},
		GoogleBusinessURL: s.profileURL,
	}
	s.cache.SetJSON(ctx, key, payload, time.Hour)
	return payload
}

// Stars expands a numeric rating into five display markers. A
// fractional part of 0.5 or more renders as a half star.
func Stars(rating float64) []string {
	stars := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		switch {
		case rating >= float64(i):
			stars = append(stars, starFull)
		case rating >= float64(i)-0.5:
			stars = append(stars, starHalf)
		default:
			stars = append(stars, starEmpty)
		}
	}
	return stars
}

func authorInitial(author string) string {
	trimmed := strings.TrimSpace(author)
	if trimmed == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}
