package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

// InstructorRepository reads coaching staff profiles.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository creates an instructor repository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// ListActive returns active instructors in display order.
func (r *InstructorRepository) ListActive(ctx context.Context) ([]models.Instructor, error) {
	const query = `SELECT id, name, title, belt, image_url, bio, achievements, specialties, display_order, is_active, created_at, updated_at
		FROM instructors WHERE is_active = true ORDER BY display_order ASC`
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}
