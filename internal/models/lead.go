package models

import "time"

// LeadKind identifies which public form produced a lead.
type LeadKind string

const (
	LeadContact    LeadKind = "contact"
	LeadExitIntent LeadKind = "exit_intent"
	LeadKidsTrial  LeadKind = "kids_trial"
)

// Lead is a captured prospect submission.
type Lead struct {
	ID            string    `db:"id" json:"id"`
	Kind          LeadKind  `db:"kind" json:"kind"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	Message       *string   `db:"message" json:"message,omitempty"`
	FreeTrial     bool      `db:"free_trial" json:"free_trial"`
	Source        *string   `db:"source" json:"source,omitempty"`
	ChildName     *string   `db:"child_name" json:"child_name,omitempty"`
	ChildAge      *int      `db:"child_age" json:"child_age,omitempty"`
	PreferredDays *string   `db:"preferred_days" json:"preferred_days,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// LeadFilter captures criteria for the admin lead listing.
type LeadFilter struct {
	Kind     string
	Search   string
	Page     int
	PageSize int
}
