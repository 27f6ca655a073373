package models

import "time"

type Event struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Location    *string   `db:"location" json:"location,omitempty"`
	CommitteeID *string   `db:"committee_id" json:"committee_id,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EthicsCall is one outreach call session ("نزولة").
type EthicsCall struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Date          string    `db:"date" json:"date"`
	CallsCount    int       `db:"calls_count" json:"calls_count"`
	AcceptedCount int       `db:"accepted_count" json:"accepted_count"`
	DriveLink     *string   `db:"drive_link" json:"drive_link,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// CallStats aggregates a month of ethics calls for the dashboard cards.
type CallStats struct {
	Calls      int `db:"calls" json:"calls"`
	Accepted   int `db:"accepted" json:"accepted"`
	Volunteers int `db:"volunteers" json:"volunteers"`
}
