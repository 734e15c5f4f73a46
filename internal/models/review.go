package models

import "time"

// Review is a curated testimonial surfaced in the review carousel.
type Review struct {
	ID           string    `db:"id" json:"id"`
	Author       string    `db:"author" json:"author"`
	Rating       float64   `db:"rating" json:"rating"`
	Text         string    `db:"text" json:"text"`
	Date         time.Time `db:"date" json:"date"`
	Source       string    `db:"source" json:"source"`
	Featured     bool      `db:"featured" json:"featured"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
}

// ReviewAggregate summarises the academy's public rating.
type ReviewAggregate struct {
	RatingValue float64 `db:"rating_value" json:"rating_value"`
	ReviewCount int     `db:"review_count" json:"review_count"`
}

// ReviewsPayload is the carousel view-model: aggregate block, ordered
// featured reviews, and the outbound profile link.
type ReviewsPayload struct {
	AggregateRating   ReviewAggregate `json:"aggregate_rating"`
	Reviews           []ReviewItem    `json:"reviews"`
	GoogleBusinessURL string          `json:"google_business_url"`
}

// ReviewItem is a single display-ready review.
type ReviewItem struct {
	ID            string   `json:"id"`
	Author        string   `json:"author"`
	AuthorInitial string   `json:"author_initial"`
	Rating        float64  `json:"rating"`
	Stars         []string `json:"stars"`
	Text          string   `json:"text"`
	Date          string   `json:"date"`
}
