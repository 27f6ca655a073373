package schedule

import (
	"sort"
	"time"
)

// Kind classifies an occurrence on the calendar.
type Kind string

const (
	KindLecture   Kind = "lecture"
	KindInterview Kind = "interview"
	KindAd        Kind = "ad"
	KindEvent     Kind = "event"
	KindCircle    Kind = "circle-session"
)

// InterviewTime is the display time for interview occurrences. Interviews are
// stored with a date only; the slot time is a product convention.
const InterviewTime = "10:00"

const dateLayout = "2006-01-02"

// Slot is one weekly session of an unbounded recurrence (Quran circles).
type Slot struct {
	Day  time.Weekday
	Time string
}

// Entry is a projector input. Exactly one of the three recurrence shapes is
// expected to be populated:
//   - Date: a single occurrence on that day;
//   - Days/Time with StartDate (and optional EndDate): weekday-bounded
//     weekly recurrence;
//   - Slots: unbounded weekly recurrence, one occurrence per matching slot.
//
// HasInterview adds an independent occurrence on InterviewDate, which may
// land on the same day as a lecture.
type Entry struct {
	ID            string
	Name          string
	Kind          Kind
	Room          string
	Date          string
	Days          []time.Weekday
	Time          string
	StartDate     string
	EndDate       string
	Slots         []Slot
	HasInterview  bool
	InterviewDate string
}

// Occurrence is one calendar-day instance of an entry. Never persisted.
type Occurrence struct {
	SourceID string
	Name     string
	Kind     Kind
	Time     string
	Room     string
}

// OccurrencesOn returns the occurrences of entries falling on date, ordered
// by display time ascending. Zero-padded 24h "HH:MM" strings compare
// correctly as plain strings. Entries with unparseable dates are skipped
// rather than failing the whole projection. Inputs are not mutated.
func OccurrencesOn(date time.Time, entries []Entry) []Occurrence {
	var out []Occurrence
	for _, e := range entries {
		if e.Date != "" {
			if d, ok := parseDate(e.Date, date.Location()); ok && sameDate(d, date) {
				out = append(out, occurrence(e, e.Time))
			}
		}
		if len(e.Days) > 0 && e.StartDate != "" {
			if recursOn(e, date) {
				out = append(out, occurrence(e, e.Time))
			}
		}
		for _, s := range e.Slots {
			if s.Day == date.Weekday() {
				out = append(out, occurrence(e, s.Time))
			}
		}
		if e.HasInterview && e.InterviewDate != "" {
			if d, ok := parseDate(e.InterviewDate, date.Location()); ok && sameDate(d, date) {
				oc := occurrence(e, InterviewTime)
				oc.Kind = KindInterview
				out = append(out, oc)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func occurrence(e Entry, displayTime string) Occurrence {
	return Occurrence{
		SourceID: e.ID,
		Name:     e.Name,
		Kind:     e.Kind,
		Time:     displayTime,
		Room:     e.Room,
	}
}

func recursOn(e Entry, date time.Time) bool {
	if !containsWeekday(e.Days, date.Weekday()) {
		return false
	}
	start, ok := parseDate(e.StartDate, date.Location())
	if !ok || dateBefore(date, start) {
		return false
	}
	if e.EndDate != "" {
		end, ok := parseDate(e.EndDate, date.Location())
		if !ok || dateBefore(end, date) {
			return false
		}
	}
	return true
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, wd := range days {
		if wd == d {
			return true
		}
	}
	return false
}

// dateBefore compares calendar dates only, ignoring time of day.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a stored lowercase day name to its weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}

// WeekdayName is the inverse of ParseWeekday, used by exports.
func WeekdayName(d time.Weekday) string {
	for name, wd := range weekdayNames {
		if wd == d {
			return name
		}
	}
	return ""
}
