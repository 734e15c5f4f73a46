package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

const classRecordColumns = "id, class_name, day_of_week, time, duration, level, instructor, description, is_active, created_at, updated_at"

// ClassScheduleRepository reads class-schedule records from the content store.
type ClassScheduleRepository struct {
	db *sqlx.DB
}

// NewClassScheduleRepository creates a class schedule repository.
func NewClassScheduleRepository(db *sqlx.DB) *ClassScheduleRepository {
	return &ClassScheduleRepository{db: db}
}

// ListActive returns every active class record, ordered by day then start
// time as entered. Display ordering is refined by the deriver, which
// parses wall-clock times; the store's text ordering is only a stable base.
func (r *ClassScheduleRepository) ListActive(ctx context.Context) ([]models.ClassRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM class_schedules WHERE is_active = true ORDER BY day_of_week, time", classRecordColumns)
	var records []models.ClassRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list class schedules: %w", err)
	}
	return records, nil
}

// ListActiveKids returns active records for the kids levels, ordered by
// level then start time.
func (r *ClassScheduleRepository) ListActiveKids(ctx context.Context) ([]models.ClassRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM class_schedules WHERE is_active = true AND level = ANY($1) ORDER BY level, time", classRecordColumns)
	var records []models.ClassRecord
	levels := []string{models.LevelAges4to6, models.LevelAges7to11, models.LevelAgesTeens}
	if err := r.db.SelectContext(ctx, &records, query, pq.Array(levels)); err != nil {
		return nil, fmt.Errorf("list kids class schedules: %w", err)
	}
	return records, nil
}
