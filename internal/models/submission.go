package models

import "time"

const (
	SubmissionApproved = "approved"
	SubmissionPending  = "pending"
	SubmissionRejected = "rejected"
)

// Submission credits a volunteer for one participation ("أثر"). Each row
// carries SourceActivityID pointing at the call/event that produced it, so
// edits and deletions cascade by id instead of matching description text.
type Submission struct {
	ID               string    `db:"id" json:"id"`
	VolunteerID      string    `db:"volunteer_id" json:"volunteer_id"`
	ActivityTypeID   string    `db:"activity_type_id" json:"activity_type_id"`
	CommitteeID      *string   `db:"committee_id" json:"committee_id,omitempty"`
	PointsAwarded    int       `db:"points_awarded" json:"points_awarded"`
	Status           string    `db:"status" json:"status"`
	Description      string    `db:"description" json:"description"`
	SourceActivityID string    `db:"source_activity_id" json:"source_activity_id"`
	WoreVest         *bool     `db:"wore_vest" json:"wore_vest,omitempty"`
	SubmittedAt      time.Time `db:"submitted_at" json:"submitted_at"`
}
