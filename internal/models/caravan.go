package models

import "time"

// Caravan is a relief-caravan trip ("قافلة"). The three optional times record
// the planned move, the actual move, and when the bus showed up; delays are
// compared on the dashboard.
type Caravan struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Type           string    `db:"type" json:"type"`
	Location       *string   `db:"location" json:"location,omitempty"`
	Date           string    `db:"date" json:"date"`
	MoveTime       *string   `db:"move_time" json:"move_time,omitempty"`
	ActualMoveTime *string   `db:"actual_move_time" json:"actual_move_time,omitempty"`
	BusArrivalTime *string   `db:"bus_arrival_time" json:"bus_arrival_time,omitempty"`
	ReturnTime     *string   `db:"return_time" json:"return_time,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Trainer struct {
	ID             string    `db:"id" json:"id"`
	NameEn         string    `db:"name_en" json:"name_en"`
	NameAr         string    `db:"name_ar" json:"name_ar"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	CommitteeID    *string   `db:"committee_id" json:"committee_id,omitempty"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	JoinDate       string    `db:"join_date" json:"join_date"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Badge is an achievement milestone. PointsRequired nil means the badge is
// awarded manually rather than by point total.
type Badge struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description,omitempty"`
	Icon           string    `db:"icon" json:"icon"`
	Color          string    `db:"color" json:"color"`
	PointsRequired *int      `db:"points_required" json:"points_required,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// VolunteerBadge is one awarded badge, joined with the badge row for display.
type VolunteerBadge struct {
	ID          string    `db:"id" json:"id"`
	VolunteerID string    `db:"volunteer_id" json:"volunteer_id"`
	Badge       Badge     `json:"badge"`
	AwardedAt   time.Time `db:"awarded_at" json:"awarded_at"`
}
