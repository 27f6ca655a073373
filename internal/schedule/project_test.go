package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestOccurrencesOn_BoundedWeekly(t *testing.T) {
	course := Entry{
		ID:        "c1",
		Name:      "Embedded Basics",
		Kind:      KindLecture,
		Days:      []time.Weekday{time.Monday},
		Time:      "18:00",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-20",
	}

	on := []time.Time{
		date(2025, time.January, 6),
		date(2025, time.January, 13),
		date(2025, time.January, 20),
	}
	for _, d := range on {
		if got := OccurrencesOn(d, []Entry{course}); len(got) != 1 {
			t.Fatalf("%s: got %d occurrences, want 1", d.Format("2006-01-02"), len(got))
		}
	}

	off := []time.Time{
		date(2024, time.December, 30), // Monday before start
		date(2025, time.January, 27),  // Monday after end
		date(2025, time.January, 7),   // Tuesday inside range
	}
	for _, d := range off {
		if got := OccurrencesOn(d, []Entry{course}); len(got) != 0 {
			t.Fatalf("%s: got %d occurrences, want 0", d.Format("2006-01-02"), len(got))
		}
	}
}

func TestOccurrencesOn_OpenEnded(t *testing.T) {
	course := Entry{
		ID:        "c1",
		Kind:      KindLecture,
		Days:      []time.Weekday{time.Wednesday},
		Time:      "17:30",
		StartDate: "2025-01-01",
	}
	// no end date: still occurring years later
	if got := OccurrencesOn(date(2027, time.September, 15), []Entry{course}); len(got) != 1 {
		t.Fatalf("open-ended course missing far in the future: got %d", len(got))
	}
}

func TestOccurrencesOn_InterviewOverlay(t *testing.T) {
	// 2025-03-10 is a Monday, so the lecture recurrence covers the
	// interview date. Both occurrences must come back, interview first
	// (10:00 sorts before 18:00).
	course := Entry{
		ID:            "c1",
		Name:          "Graphics",
		Kind:          KindLecture,
		Days:          []time.Weekday{time.Monday},
		Time:          "18:00",
		StartDate:     "2025-02-01",
		HasInterview:  true,
		InterviewDate: "2025-03-10",
	}

	got := OccurrencesOn(date(2025, time.March, 10), []Entry{course})
	if len(got) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(got))
	}
	if got[0].Kind != KindInterview || got[0].Time != InterviewTime {
		t.Fatalf("first occurrence = %+v, want interview at %s", got[0], InterviewTime)
	}
	if got[1].Kind != KindLecture || got[1].Time != "18:00" {
		t.Fatalf("second occurrence = %+v, want lecture at 18:00", got[1])
	}
}

func TestOccurrencesOn_CircleSlots(t *testing.T) {
	circle := Entry{
		ID:   "q1",
		Name: "حلقة النور",
		Kind: KindCircle,
		Slots: []Slot{
			{Day: time.Saturday, Time: "16:00"},
			{Day: time.Tuesday, Time: "19:00"},
		},
	}

	sat := OccurrencesOn(date(2025, time.March, 1), []Entry{circle}) // Saturday
	if len(sat) != 1 || sat[0].Time != "16:00" {
		t.Fatalf("saturday: got %+v", sat)
	}
	tue := OccurrencesOn(date(2025, time.March, 4), []Entry{circle}) // Tuesday
	if len(tue) != 1 || tue[0].Time != "19:00" {
		t.Fatalf("tuesday: got %+v", tue)
	}
	if got := OccurrencesOn(date(2025, time.March, 3), []Entry{circle}); len(got) != 0 {
		t.Fatalf("monday: got %d occurrences, want 0", len(got))
	}
}

func TestOccurrencesOn_SortedByTime(t *testing.T) {
	entries := []Entry{
		{ID: "e1", Kind: KindEvent, Date: "2025-05-01", Time: "20:00"},
		{ID: "e2", Kind: KindEvent, Date: "2025-05-01", Time: "09:15"},
		{ID: "e3", Kind: KindEvent, Date: "2025-05-01", Time: "13:00"},
	}
	got := OccurrencesOn(date(2025, time.May, 1), entries)
	if len(got) != 3 {
		t.Fatalf("got %d occurrences, want 3", len(got))
	}
	want := []string{"09:15", "13:00", "20:00"}
	for i, w := range want {
		if got[i].Time != w {
			t.Fatalf("occurrence %d at %s, want %s", i, got[i].Time, w)
		}
	}
}

func TestOccurrencesOn_Idempotent(t *testing.T) {
	entries := []Entry{
		{ID: "c1", Kind: KindLecture, Days: []time.Weekday{time.Monday}, Time: "18:00", StartDate: "2025-01-06"},
		{ID: "q1", Kind: KindCircle, Slots: []Slot{{Day: time.Monday, Time: "16:00"}}},
	}
	d := date(2025, time.January, 13)
	first := OccurrencesOn(d, entries)
	second := OccurrencesOn(d, entries)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated projection differs: %+v vs %+v", first, second)
	}
}

func TestOccurrencesOn_MalformedDates(t *testing.T) {
	entries := []Entry{
		{ID: "bad1", Kind: KindEvent, Date: "not-a-date", Time: "10:00"},
		{ID: "bad2", Kind: KindLecture, Days: []time.Weekday{time.Monday}, Time: "18:00", StartDate: ""},
		{ID: "bad3", Kind: KindLecture, Days: []time.Weekday{time.Monday}, Time: "18:00", StartDate: "garbage"},
		{ID: "bad4", Kind: KindLecture, Days: []time.Weekday{time.Monday}, Time: "18:00", StartDate: "2025-01-06", EndDate: "??"},
		{ID: "ok", Kind: KindEvent, Date: "2025-01-13", Time: "11:00"},
	}
	got := OccurrencesOn(date(2025, time.January, 13), entries) // a Monday
	if len(got) != 1 || got[0].SourceID != "ok" {
		t.Fatalf("malformed entries must be excluded, got %+v", got)
	}
}

func TestProjectMonth(t *testing.T) {
	course := Entry{
		ID:        "c1",
		Kind:      KindLecture,
		Days:      []time.Weekday{time.Monday},
		Time:      "18:00",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-20",
	}
	grid := ProjectMonth(BuildMonthGrid(date(2025, time.January, 1), date(2025, time.January, 7)), []Entry{course})

	busy := 0
	for _, cell := range grid {
		if cell.Padding {
			if cell.Occurrences != nil {
				t.Fatal("padding cell picked up occurrences")
			}
			continue
		}
		if len(cell.Occurrences) > 0 {
			busy++
			if wd := cell.Date.Weekday(); wd != time.Monday {
				t.Fatalf("occurrence on %v, want Monday only", wd)
			}
		}
	}
	if busy != 3 {
		t.Fatalf("%d busy days, want 3", busy)
	}
}
