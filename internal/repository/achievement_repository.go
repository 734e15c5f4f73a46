package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

// AchievementRepository reads wall-of-champions entries.
type AchievementRepository struct {
	db *sqlx.DB
}

// NewAchievementRepository creates an achievement repository.
func NewAchievementRepository(db *sqlx.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// List returns achievements newest first, optionally restricted to
// featured entries with a limit (the homepage preview).
func (r *AchievementRepository) List(ctx context.Context, featuredOnly bool, limit int) ([]models.Achievement, error) {
	query := "SELECT id, student_name, category, title, date, description, featured, created_at FROM achievements"
	var args []interface{}
	if featuredOnly {
		query += " WHERE featured = true"
	}
	query += " ORDER BY date DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	var achievements []models.Achievement
	if err := r.db.SelectContext(ctx, &achievements, query, args...); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}
