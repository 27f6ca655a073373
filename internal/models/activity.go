package models

import "time"

type ActivityType struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Label         string `db:"label" json:"label"`
	DefaultPoints int    `db:"default_points" json:"default_points"`
}

// Activity type names seeded at startup. Award flows look them up by name.
const (
	TypeEthicsPublishing = "Ethics Publishing"
	TypeEventParticipant = "Event Participation"
	TypeCourseOrganizing = "Course Organizing"
	TypeQuranCircle      = "Quran Circle"
	TypeCaravan          = "Caravan"
)

type Course struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	TrainerName   string    `db:"trainer_name" json:"trainer_name"`
	TrainerPhone  *string   `db:"trainer_phone" json:"trainer_phone,omitempty"`
	Room          string    `db:"room" json:"room"`
	ScheduleDays  []string  `db:"schedule_days" json:"schedule_days"`
	ScheduleTime  string    `db:"schedule_time" json:"schedule_time"`
	HasInterview  bool      `db:"has_interview" json:"has_interview"`
	InterviewDate *string   `db:"interview_date" json:"interview_date,omitempty"`
	TotalLectures int       `db:"total_lectures" json:"total_lectures"`
	StartDate     string    `db:"start_date" json:"start_date"`
	EndDate       *string   `db:"end_date" json:"end_date,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type CourseAd struct {
	ID          string `db:"id" json:"id"`
	CourseID    string `db:"course_id" json:"course_id"`
	CourseName  string `db:"course_name" json:"course_name"`
	AdNumber    int    `db:"ad_number" json:"ad_number"`
	AdDate      string `db:"ad_date" json:"ad_date"`
	PosterDone  bool   `db:"poster_done" json:"poster_done"`
	ContentDone bool   `db:"content_done" json:"content_done"`
}

// AdUrgencyDays: an ad still missing poster or content this close to its date
// is flagged urgent on the dashboard.
const AdUrgencyDays = 5

// Urgent reports whether the ad needs attention as of today.
func (a CourseAd) Urgent(today time.Time) bool {
	if a.PosterDone && a.ContentDone {
		return false
	}
	due, err := time.ParseInLocation("2006-01-02", a.AdDate, today.Location())
	if err != nil {
		return false
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	diff := due.Sub(today) / (24 * time.Hour)
	return diff >= 0 && diff <= AdUrgencyDays
}
