package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGrid_PaddingAndLength(t *testing.T) {
	cases := []struct {
		name    string
		anchor  time.Time
		padding int
		days    int
	}{
		// 2025-01-01 is a Wednesday: 4 leading blanks in a Saturday-start week.
		{"january 2025", date(2025, time.January, 15), 4, 31},
		// 2024-02-01 is a Thursday; leap year February.
		{"february 2024", date(2024, time.February, 1), 5, 29},
		// 2025-03-01 is a Saturday: no padding at all.
		{"march 2025", date(2025, time.March, 31), 0, 31},
		// 2025-08-01 is a Friday: maximum padding.
		{"august 2025", date(2025, time.August, 10), 6, 31},
	}

	today := date(2025, time.January, 7)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := BuildMonthGrid(tc.anchor, today)
			if len(grid) != tc.padding+tc.days {
				t.Fatalf("grid length = %d, want %d", len(grid), tc.padding+tc.days)
			}
			if len(grid) > 42 {
				t.Fatalf("grid length %d exceeds 42", len(grid))
			}
			for i := 0; i < tc.padding; i++ {
				if !grid[i].Padding {
					t.Fatalf("cell %d: expected padding", i)
				}
			}
			for i := tc.padding; i < len(grid); i++ {
				if grid[i].Padding {
					t.Fatalf("cell %d: unexpected padding", i)
				}
				wantDay := i - tc.padding + 1
				if grid[i].Date.Day() != wantDay {
					t.Fatalf("cell %d: day = %d, want %d", i, grid[i].Date.Day(), wantDay)
				}
			}
		})
	}
}

func TestBuildMonthGrid_Today(t *testing.T) {
	today := date(2025, time.January, 7)
	grid := BuildMonthGrid(date(2025, time.January, 1), today)

	marked := 0
	for _, cell := range grid {
		if cell.IsToday {
			marked++
			if cell.Date.Day() != 7 {
				t.Fatalf("IsToday on day %d, want 7", cell.Date.Day())
			}
		}
	}
	if marked != 1 {
		t.Fatalf("IsToday set on %d cells, want 1", marked)
	}

	// different month: today falls outside the grid
	grid = BuildMonthGrid(date(2025, time.February, 1), today)
	for _, cell := range grid {
		if cell.IsToday {
			t.Fatal("IsToday must not be set outside today's month")
		}
	}
}

func TestBuildMonthGrid_Deterministic(t *testing.T) {
	today := date(2025, time.June, 3)
	a := BuildMonthGrid(date(2025, time.June, 20), today)
	b := BuildMonthGrid(date(2025, time.June, 20), today)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || a[i].Padding != b[i].Padding || a[i].IsToday != b[i].IsToday {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}
