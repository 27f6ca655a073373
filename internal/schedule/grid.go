package schedule

import "time"

// Day is one cell of the month calendar. Padding cells carry a zero Date and
// exist only to align the first of the month under the right weekday column.
type Day struct {
	Date        time.Time
	Padding     bool
	IsToday     bool
	Occurrences []Occurrence
}

// BuildMonthGrid returns the calendar cells for the month containing anchor,
// with the week starting on Saturday. Leading padding cells are followed by
// one cell per calendar date in ascending order; there is no trailing padding
// (the final row renders ragged). Pure function of (anchor, today).
func BuildMonthGrid(anchor, today time.Time) []Day {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Rotate Go's Sunday-based weekday numbering to a Saturday-start grid.
	padding := (int(first.Weekday()) + 1) % 7

	out := make([]Day, 0, padding+daysInMonth)
	for i := 0; i < padding; i++ {
		out = append(out, Day{Padding: true})
	}
	for d := 0; d < daysInMonth; d++ {
		date := first.AddDate(0, 0, d)
		out = append(out, Day{
			Date:    date,
			IsToday: sameDate(date, today),
		})
	}
	return out
}

// ProjectMonth fills each non-padding cell's occurrence list from entries.
func ProjectMonth(days []Day, entries []Entry) []Day {
	for i := range days {
		if days[i].Padding {
			continue
		}
		days[i].Occurrences = OccurrencesOn(days[i].Date, entries)
	}
	return days
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
