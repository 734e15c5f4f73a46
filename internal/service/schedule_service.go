package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	"github.com/northcoast-bjj/academy-api/internal/schedule"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
)

type classScheduleRepository interface {
	ListActive(ctx context.Context) ([]models.ClassRecord, error)
	ListActiveKids(ctx context.Context) ([]models.ClassRecord, error)
}

// WeekSchedule is the classes-page payload: every weekday keyed by name.
type WeekSchedule struct {
	Days    []string                        `json:"days"`
	Classes map[string][]models.ClassRecord `json:"classes"`
}

// ScheduleService derives the presentation views of the class timetable.
type ScheduleService struct {
	repo   classScheduleRepository
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

func NewScheduleService(repo classScheduleRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Week returns all active classes grouped by day, classes within a day
// ordered by start time.
func (s *ScheduleService) Week(ctx context.Context) (*WeekSchedule, error) {
	const key = "schedule:week"
	var cached WeekSchedule
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	records, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load class schedule", zap.Error(err))
		return nil, appErrors.Wrap(err, "SCHEDULE_LOAD_FAILED", http.StatusInternalServerError, "Failed to load class schedule")
	}

	week := &WeekSchedule{
		Days:    schedule.Days,
		Classes: schedule.GroupByDay(records),
	}
	s.cache.SetJSON(ctx, key, week, s.ttl)
	return week, nil
}

// KidsGroups returns the kids program age-group cards.
func (s *ScheduleService) KidsGroups(ctx context.Context) ([]schedule.AgeGroup, error) {
	const key = "schedule:kids"
	var cached []schedule.AgeGroup
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.repo.ListActiveKids(ctx)
	if err != nil {
		s.logger.Error("failed to load kids schedule", zap.Error(err))
		return nil, appErrors.Wrap(err, "SCHEDULE_LOAD_FAILED", http.StatusInternalServerError, "Failed to load class schedule")
	}

	groups := schedule.KidsAgeGroups(records)
	s.cache.SetJSON(ctx, key, groups, s.ttl)
	return groups, nil
}

// TimeSlots returns the homepage time-of-day summary cards.
func (s *ScheduleService) TimeSlots(ctx context.Context) ([]schedule.TimeSlot, error) {
	const key = "schedule:slots"
	var cached []schedule.TimeSlot
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load class schedule", zap.Error(err))
		return nil, appErrors.Wrap(err, "SCHEDULE_LOAD_FAILED", http.StatusInternalServerError, "Failed to load class schedule")
	}

	slots := schedule.TimeSlots(records)
	s.cache.SetJSON(ctx, key, slots, s.ttl)
	return slots, nil
}

// Saturday returns the weekend highlight card.
func (s *ScheduleService) Saturday(ctx context.Context) (*schedule.SaturdayInfo, error) {
	const key = "schedule:saturday"
	var cached schedule.SaturdayInfo
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	records, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load class schedule", zap.Error(err))
		return nil, appErrors.Wrap(err, "SCHEDULE_LOAD_FAILED", http.StatusInternalServerError, "Failed to load class schedule")
	}

	info := schedule.Saturday(records)
	s.cache.SetJSON(ctx, key, info, s.ttl)
	return &info, nil
}

// BusinessHours returns the footer opening-hours blocks.
func (s *ScheduleService) BusinessHours(ctx context.Context) ([]schedule.HoursBlock, error) {
	const key = "schedule:hours"
	var cached []schedule.HoursBlock
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to load class schedule", zap.Error(err))
		return nil, appErrors.Wrap(err, "SCHEDULE_LOAD_FAILED", http.StatusInternalServerError, "Failed to load class schedule")
	}

	blocks := schedule.BusinessHours(records)
	s.cache.SetJSON(ctx, key, blocks, s.ttl)
	return blocks, nil
}
