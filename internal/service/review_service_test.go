package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

type mockReviewRepo struct {
	reviews   []models.Review
	aggregate models.ReviewAggregate
	err       error
	calls     int
}

func (m *mockReviewRepo) ListFeatured(ctx context.Context) ([]models.Review, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

func (m *mockReviewRepo) Aggregate(ctx context.Context) (*models.ReviewAggregate, error) {
	agg := m.aggregate
	return &agg, nil
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   []string
	}{
		{5, []string{"full", "full", "full", "full", "full"}},
		{4.5, []string{"full", "full", "full", "full", "half"}},
		{4.7, []string{"full", "full", "full", "full", "half"}},
		{4.2, []string{"full", "full", "full", "full", "empty"}},
		{3, []string{"full", "full", "full", "empty", "empty"}},
		{0, []string{"empty", "empty", "empty", "empty", "empty"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Stars(tc.rating), "rating %.1f", tc.rating)
	}
}

func TestReviewServiceFeatured(t *testing.T) {
	repo := &mockReviewRepo{
		reviews: []models.Review{{
			ID:     "r1",
			Author: "jane d.",
			Rating: 5,
			Text:   "Fantastic gym for the whole family.",
			Date:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		}},
		aggregate: models.ReviewAggregate{RatingValue: 4.9, ReviewCount: 87},
	}
	svc := NewReviewService(repo, newCacheForTest(), 24*time.Hour, "https://maps.example.com/academy", zap.NewNop())

	payload, err := svc.Featured(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4.9, payload.AggregateRating.RatingValue)
	assert.Equal(t, 87, payload.AggregateRating.ReviewCount)
	assert.Equal(t, "https://maps.example.com/academy", payload.GoogleBusinessURL)

	require.Len(t, payload.Reviews, 1)
	item := payload.Reviews[0]
	assert.Equal(t, "J", item.AuthorInitial)
	assert.Equal(t, []string{"full", "full", "full", "full", "full"}, item.Stars)
	assert.Equal(t, "June 2025", item.Date)
}

func TestReviewServiceFeaturedCaches(t *testing.T) {
	repo := &mockReviewRepo{aggregate: models.ReviewAggregate{RatingValue: 4.9, ReviewCount: 10}}
	svc := NewReviewService(repo, newCacheForTest(), 24*time.Hour, "", zap.NewNop())

	_, err := svc.Featured(context.Background())
	require.NoError(t, err)
	_, err = svc.Featured(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestReviewServiceFeaturedFallsBackWhenStoreFails(t *testing.T) {
	repo := &mockReviewRepo{err: errors.New("connection refused")}
	svc := NewReviewService(repo, newCacheForTest(), 24*time.Hour, "https://maps.example.com/academy", zap.NewNop())

	payload, err := svc.Featured(context.Background())
	require.NoError(t, err)

	assert.Empty(t, payload.Reviews)
	assert.Zero(t, payload.AggregateRating.ReviewCount)
	assert.Equal(t, "https://maps.example.com/academy", payload.GoogleBusinessURL)

	// The empty payload is cached so the store is not retried per request.
	_, err = svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}
