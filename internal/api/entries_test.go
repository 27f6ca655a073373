package api

import (
	"testing"
	"time"

	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/schedule"
)

func TestCourseEntries(t *testing.T) {
	end := "2025-03-30"
	interview := "2025-01-10"
	entries := courseEntries([]models.Course{{
		ID:            "c1",
		Name:          "فقه المعاملات",
		Room:          "قاعة 2",
		ScheduleDays:  []string{"monday", "wednesday", "someday"},
		ScheduleTime:  "18:30",
		StartDate:     "2025-01-13",
		EndDate:       &end,
		HasInterview:  true,
		InterviewDate: &interview,
	}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Kind != schedule.KindLecture || e.Time != "18:30" || e.Room != "قاعة 2" {
		t.Fatalf("unexpected entry %#v", e)
	}
	// unknown day name is dropped, valid ones survive
	if len(e.Days) != 2 || e.Days[0] != time.Monday || e.Days[1] != time.Wednesday {
		t.Fatalf("unexpected days %v", e.Days)
	}
	if e.EndDate != end || !e.HasInterview || e.InterviewDate != interview {
		t.Fatalf("bounds did not carry over: %#v", e)
	}
}

func TestCircleEntries_DropsBadSlots(t *testing.T) {
	entries := circleEntries([]models.QuranCircle{{
		ID:   "q1",
		Name: "حلقة النور",
		Schedule: []models.CircleSlot{
			{Day: 6, Time: "08:00"},
			{Day: 9, Time: "09:00"},
		},
	}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Kind != schedule.KindCircle || len(e.Slots) != 1 {
		t.Fatalf("unexpected entry %#v", e)
	}
	if e.Slots[0].Day != time.Saturday || e.Slots[0].Time != "08:00" {
		t.Fatalf("unexpected slot %#v", e.Slots[0])
	}
}

func TestEventEntries(t *testing.T) {
	loc := "المسجد الكبير"
	entries := eventEntries([]models.Event{{
		ID: "e1", Name: "إفطار جماعي", Date: "2025-03-15", Time: "16:00", Location: &loc,
	}})
	if len(entries) != 1 {
		t.Fatal("expected 1 entry")
	}
	e := entries[0]
	if e.Kind != schedule.KindEvent || e.Date != "2025-03-15" || e.Room != loc {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestAdEntries_NameCarriesNumber(t *testing.T) {
	entries := adEntries([]models.CourseAd{{
		ID: "a1", CourseName: "تجويد", AdNumber: 2, AdDate: "2025-02-01",
	}})
	if len(entries) != 1 {
		t.Fatal("expected 1 entry")
	}
	if entries[0].Name != "إعلان 2 - تجويد" {
		t.Fatalf("unexpected name %q", entries[0].Name)
	}
	if entries[0].Kind != schedule.KindAd || entries[0].Date != "2025-02-01" {
		t.Fatalf("unexpected entry %#v", entries[0])
	}
}

func TestValidateSlots(t *testing.T) {
	cases := []struct {
		name  string
		slots []models.CircleSlot
		ok    bool
	}{
		{"valid", []models.CircleSlot{{Day: 0, Time: "06:30"}, {Day: 6, Time: "23:59"}}, true},
		{"day out of range", []models.CircleSlot{{Day: 7, Time: "06:30"}}, false},
		{"negative day", []models.CircleSlot{{Day: -1, Time: "06:30"}}, false},
		{"bad hour", []models.CircleSlot{{Day: 1, Time: "24:00"}}, false},
		{"missing padding", []models.CircleSlot{{Day: 1, Time: "9:30"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSlots(tc.slots)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
