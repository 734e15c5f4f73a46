package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
)

type stubCacheRepo struct {
	store map[string][]byte
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{store: make(map[string][]byte)}
}

func (s *stubCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = raw
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	s.store = make(map[string][]byte)
	return nil
}

type stubScheduleRepo struct {
	records []models.ClassRecord
	err     error
	calls   int
}

func (s *stubScheduleRepo) ListActive(ctx context.Context) ([]models.ClassRecord, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubScheduleRepo) ListActiveKids(ctx context.Context) ([]models.ClassRecord, error) {
	s.calls++
	var kids []models.ClassRecord
	for _, r := range s.records {
		switch r.Level {
		case models.LevelAges4to6, models.LevelAges7to11, models.LevelAgesTeens:
			kids = append(kids, r)
		}
	}
	return kids, s.err
}

func classRecord(name, day, clock, duration, level string) models.ClassRecord {
	return models.ClassRecord{
		ClassName: name,
		DayOfWeek: day,
		Time:      clock,
		Duration:  duration,
		Level:     level,
		IsActive:  true,
	}
}

func newCacheForTest() *CacheService {
	return NewCacheService(newStubCacheRepo(), nil, zap.NewNop())
}

func TestScheduleServiceWeek(t *testing.T) {
	repo := &stubScheduleRepo{records: []models.ClassRecord{
		classRecord("Evening", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
		classRecord("Early Bird", models.Monday, "6:00 AM", "60 min", models.LevelAllLevels),
	}}
	svc := NewScheduleService(repo, newCacheForTest(), time.Minute, zap.NewNop())

	week, err := svc.Week(context.Background())
	require.NoError(t, err)
	require.Len(t, week.Days, 7)
	require.Len(t, week.Classes[models.Monday], 2)
	assert.Equal(t, "Early Bird", week.Classes[models.Monday][0].ClassName)
}

func TestScheduleServiceWeekUsesCache(t *testing.T) {
	repo := &stubScheduleRepo{records: []models.ClassRecord{
		classRecord("Evening", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
	}}
	svc := NewScheduleService(repo, newCacheForTest(), time.Minute, zap.NewNop())

	_, err := svc.Week(context.Background())
	require.NoError(t, err)
	_, err = svc.Week(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestScheduleServiceSurvivesDisabledCache(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewScheduleService(repo, NewCacheService(nil, nil, zap.NewNop()), time.Minute, zap.NewNop())

	_, err := svc.Week(context.Background())
	require.NoError(t, err)
	_, err = svc.Week(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
}

func TestScheduleServiceWrapsStoreErrors(t *testing.T) {
	repo := &stubScheduleRepo{err: errors.New("connection refused")}
	svc := NewScheduleService(repo, newCacheForTest(), time.Minute, zap.NewNop())

	_, err := svc.Week(context.Background())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCHEDULE_LOAD_FAILED", appErr.Code)
}

func TestScheduleServiceKidsGroups(t *testing.T) {
	repo := &stubScheduleRepo{records: []models.ClassRecord{
		classRecord("Little Champions", models.Monday, "4:00 PM", "30 min", models.LevelAges4to6),
		classRecord("Adults", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
	}}
	svc := NewScheduleService(repo, newCacheForTest(), time.Minute, zap.NewNop())

	groups, err := svc.KidsGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Mon - 4:00 PM", groups[0].ScheduleDays)
	assert.Equal(t, "Check schedule for times", groups[1].ScheduleDays)
}

func TestScheduleServiceSaturdayAndHours(t *testing.T) {
	repo := &stubScheduleRepo{records: []models.ClassRecord{
		classRecord("Open Mat", models.Saturday, "10:00 AM", "120 min", models.LevelAllLevels),
	}}
	svc := NewScheduleService(repo, newCacheForTest(), time.Minute, zap.NewNop())

	info, err := svc.Saturday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", info.AdultsTime)
	assert.Equal(t, "9:00 AM", info.KidsTime)

	blocks, err := svc.BusinessHours(context.Background())
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "10:00 AM - 12:00 PM", blocks[1].Time)
}
