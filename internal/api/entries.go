package api

import (
	"fmt"
	"time"

	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/schedule"
)

var arabicDays = [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

// arabicDay renders a weekday for exports, indexed Sunday-first like time.Weekday.
func arabicDay(d time.Weekday) string {
	return arabicDays[int(d)%7]
}

// Converters from persisted rows to projector entries. Unknown weekday names
// are dropped silently; the projector already tolerates sparse entries.

func courseEntries(courses []models.Course) []schedule.Entry {
	out := make([]schedule.Entry, 0, len(courses))
	for _, c := range courses {
		e := schedule.Entry{
			ID:           c.ID,
			Name:         c.Name,
			Kind:         schedule.KindLecture,
			Room:         c.Room,
			Time:         c.ScheduleTime,
			StartDate:    c.StartDate,
			HasInterview: c.HasInterview,
		}
		for _, name := range c.ScheduleDays {
			if d, ok := schedule.ParseWeekday(name); ok {
				e.Days = append(e.Days, d)
			}
		}
		if c.EndDate != nil {
			e.EndDate = *c.EndDate
		}
		if c.InterviewDate != nil {
			e.InterviewDate = *c.InterviewDate
		}
		out = append(out, e)
	}
	return out
}

func adEntries(ads []models.CourseAd) []schedule.Entry {
	out := make([]schedule.Entry, 0, len(ads))
	for _, a := range ads {
		out = append(out, schedule.Entry{
			ID:   a.ID,
			Name: fmt.Sprintf("إعلان %d - %s", a.AdNumber, a.CourseName),
			Kind: schedule.KindAd,
			Date: a.AdDate,
		})
	}
	return out
}

func eventEntries(events []models.Event) []schedule.Entry {
	out := make([]schedule.Entry, 0, len(events))
	for _, ev := range events {
		e := schedule.Entry{
			ID:   ev.ID,
			Name: ev.Name,
			Kind: schedule.KindEvent,
			Date: ev.Date,
			Time: ev.Time,
		}
		if ev.Location != nil {
			e.Room = *ev.Location
		}
		out = append(out, e)
	}
	return out
}

func circleEntries(circles []models.QuranCircle) []schedule.Entry {
	out := make([]schedule.Entry, 0, len(circles))
	for _, c := range circles {
		e := schedule.Entry{
			ID:   c.ID,
			Name: c.Name,
			Kind: schedule.KindCircle,
		}
		for _, slot := range c.Schedule {
			if slot.Day < 0 || slot.Day > 6 {
				continue
			}
			e.Slots = append(e.Slots, schedule.Slot{
				Day:  time.Weekday(slot.Day),
				Time: slot.Time,
			})
		}
		out = append(out, e)
	}
	return out
}
