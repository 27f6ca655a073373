package models

import "time"

// ActivityKind identifies which table a participant row belongs to.
type ActivityKind string

const (
	KindEthicsCall ActivityKind = "ethics_call"
	KindEvent      ActivityKind = "event"
	KindCaravan    ActivityKind = "caravan"
)

// DescriptionLabel returns the legacy submission-description prefix for the
// kind. Kept byte-for-byte compatible with historical rows so old reports
// still group correctly; cascades no longer depend on it.
func (k ActivityKind) DescriptionLabel() string {
	switch k {
	case KindEthicsCall:
		return "مكالمات: "
	case KindEvent:
		return "Event: "
	case KindCaravan:
		return "Caravan: "
	default:
		return ""
	}
}

// Participant is a person attached to a call or event. Guests have
// IsVolunteer false and no VolunteerID; they are recorded but never scored.
type Participant struct {
	ID           string       `db:"id" json:"id"`
	ActivityKind ActivityKind `db:"activity_kind" json:"activity_kind"`
	ActivityID   string       `db:"activity_id" json:"activity_id"`
	VolunteerID  *string      `db:"volunteer_id" json:"volunteer_id,omitempty"`
	Name         string       `db:"name" json:"name"`
	Phone        *string      `db:"phone" json:"phone,omitempty"`
	IsVolunteer  bool         `db:"is_volunteer" json:"is_volunteer"`
	WoreVest     bool         `db:"wore_vest" json:"wore_vest"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}
