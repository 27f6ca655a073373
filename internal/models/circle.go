package models

import "time"

// CircleSlot is one weekly Quran circle session. Day uses Go's numbering
// (0 = Sunday), Time is zero-padded 24h "HH:MM".
type CircleSlot struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// QuranCircle recurs every week on its slots while active. No start or end
// bound; inactive circles drop off the calendar entirely.
type QuranCircle struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	TeacherName string       `db:"teacher_name" json:"teacher_name"`
	Schedule    []CircleSlot `db:"schedule" json:"schedule"`
	IsActive    bool         `db:"is_active" json:"is_active"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}
