package models

import (
	"time"

	"github.com/lib/pq"
)

// Instructor is a coaching staff profile shown on the instructors page.
type Instructor struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Title        string         `db:"title" json:"title"`
	Belt         string         `db:"belt" json:"belt"`
	ImageURL     *string        `db:"image_url" json:"image_url,omitempty"`
	Bio          string         `db:"bio" json:"bio"`
	Achievements pq.StringArray `db:"achievements" json:"achievements,omitempty"`
	Specialties  pq.StringArray `db:"specialties" json:"specialties,omitempty"`
	DisplayOrder int            `db:"display_order" json:"display_order"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
