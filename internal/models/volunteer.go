package models

import "time"

type Committee struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

type Volunteer struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	CommitteeID *string   `db:"committee_id" json:"committee_id,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// VolunteerWithPoints is a leaderboard row: volunteer metadata plus the sum
// of approved points.
type VolunteerWithPoints struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	CommitteeName *string `db:"committee_name" json:"committee_name,omitempty"`
	TotalPoints   int     `db:"total_points" json:"total_points"`
}
