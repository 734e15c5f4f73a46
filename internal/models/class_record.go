package models

import "time"

// Canonical day-of-week names as stored by the content editors. Records with
// any other spelling simply never match a day grouping.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Level labels drawn from the content store's closed set.
const (
	LevelAllLevels = "All Levels"
	LevelAdvanced  = "Advanced"
	LevelAges4to6  = "Ages 4-6"
	LevelAges7to11 = "Ages 7-11"
	LevelAgesTeens = "Ages 12-Teens"
	LevelPrivate   = "Private"
)

// ClassRecord is a single class-schedule entry from the content store.
// Time is a 12-hour wall-clock string ("6:00 AM"); Duration is free text
// beginning with a minute count ("60 min"). Both fields are editor-supplied
// and may be malformed; the deriver degrades instead of failing.
type ClassRecord struct {
	ID          string    `db:"id" json:"id"`
	ClassName   string    `db:"class_name" json:"class_name"`
	DayOfWeek   string    `db:"day_of_week" json:"day_of_week"`
	Time        string    `db:"time" json:"time"`
	Duration    string    `db:"duration" json:"duration"`
	Level       string    `db:"level" json:"level"`
	Instructor  *string   `db:"instructor" json:"instructor,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
