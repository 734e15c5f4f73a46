package models

import "time"

// Achievement categories mirror the content store's closed set.
const (
	AchievementCompetition = "competition"
	AchievementPromotion   = "promotion"
	AchievementSpotlight   = "spotlight"
)

// Achievement is a wall-of-champions entry.
type Achievement struct {
	ID          string    `db:"id" json:"id"`
	StudentName string    `db:"student_name" json:"student_name"`
	Category    string    `db:"category" json:"category"`
	Title       string    `db:"title" json:"title"`
	Date        time.Time `db:"date" json:"date"`
	Description string    `db:"description" json:"description"`
	Featured    bool      `db:"featured" json:"featured"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
