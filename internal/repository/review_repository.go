package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

// ReviewRepository reads curated testimonials.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListFeatured returns featured reviews by curation order, newest first
// within the same order value.
func (r *ReviewRepository) ListFeatured(ctx context.Context) ([]models.Review, error) {
	const query = `SELECT id, author, rating, text, date, source, featured, display_order
		FROM reviews WHERE featured = true ORDER BY display_order ASC, date DESC`
	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("list featured reviews: %w", err)
	}
	return reviews, nil
}

// Aggregate computes the overall rating block across all reviews.
func (r *ReviewRepository) Aggregate(ctx context.Context) (*models.ReviewAggregate, error) {
	const query = `SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0) AS rating_value, COUNT(*) AS review_count FROM reviews`
	var agg models.ReviewAggregate
	if err := r.db.GetContext(ctx, &agg, query); err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}
	return &agg, nil
}
