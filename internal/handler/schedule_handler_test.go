package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	"github.com/northcoast-bjj/academy-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubScheduleRepo struct {
	records []models.ClassRecord
}

func (s *stubScheduleRepo) ListActive(ctx context.Context) ([]models.ClassRecord, error) {
	return s.records, nil
}

func (s *stubScheduleRepo) ListActiveKids(ctx context.Context) ([]models.ClassRecord, error) {
	return s.records, nil
}

func scheduleTestRouter(records []models.ClassRecord) *gin.Engine {
	cache := service.NewCacheService(nil, nil, zap.NewNop())
	svc := service.NewScheduleService(&stubScheduleRepo{records: records}, cache, time.Minute, zap.NewNop())
	h := NewScheduleHandler(svc, 60)

	r := gin.New()
	r.GET("/schedule", h.Week)
	r.GET("/schedule/hours", h.BusinessHours)
	r.GET("/schedule/saturday", h.Saturday)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestScheduleWeekEndpoint(t *testing.T) {
	r := scheduleTestRouter([]models.ClassRecord{{
		ClassName: "Fundamentals",
		DayOfWeek: models.Monday,
		Time:      "6:00 PM",
		Duration:  "60 min",
		Level:     models.LevelAllLevels,
		IsActive:  true,
	}})

	w := get(r, "/schedule")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60, stale-while-revalidate=300", w.Header().Get("Cache-Control"))

	var body struct {
		Data struct {
			Days    []string                        `json:"days"`
			Classes map[string][]models.ClassRecord `json:"classes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Days, 7)
	assert.Len(t, body.Data.Classes[models.Monday], 1)
	assert.Empty(t, body.Data.Classes[models.Sunday])
}

func TestScheduleHoursEndpointFallback(t *testing.T) {
	r := scheduleTestRouter(nil)

	w := get(r, "/schedule/hours")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "6:00 AM - 9:00 PM")
	assert.Contains(t, w.Body.String(), "Closed")
}

func TestScheduleSaturdayEndpoint(t *testing.T) {
	r := scheduleTestRouter(nil)

	w := get(r, "/schedule/saturday")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9:00 AM")
	assert.Contains(t, w.Body.String(), "10:00 AM")
}
