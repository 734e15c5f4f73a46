package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
)

type instructorRepository interface {
	ListActive(ctx context.Context) ([]models.Instructor, error)
}

// InstructorService serves the coaching staff page.
type InstructorService struct {
	repo   instructorRepository
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

func NewInstructorService(repo instructorRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *InstructorService {
	return &InstructorService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// List returns active instructors in display order.
func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, error) {
	const key = "instructors:active"
	var cached []models.Instructor
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	instructors, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load instructors", zap.Error(err))
		return nil, appErrors.Wrap(err, "INSTRUCTORS_LOAD_FAILED", http.StatusInternalServerError, "Failed to load instructors")
	}

	s.cache.SetJSON(ctx, key, instructors, s.ttl)
	return instructors, nil
}
