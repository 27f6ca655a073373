package models

import (
	"testing"
	"time"
)

func TestAdUrgency(t *testing.T) {
	today := time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		ad     CourseAd
		urgent bool
	}{
		{"due soon and unfinished", CourseAd{AdDate: "2025-02-12"}, true},
		{"due today", CourseAd{AdDate: "2025-02-10"}, true},
		{"far away", CourseAd{AdDate: "2025-02-20"}, false},
		{"already passed", CourseAd{AdDate: "2025-02-09"}, false},
		{"finished", CourseAd{AdDate: "2025-02-12", PosterDone: true, ContentDone: true}, false},
		{"half finished", CourseAd{AdDate: "2025-02-12", PosterDone: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ad.Urgent(today); got != tc.urgent {
				t.Fatalf("Urgent() = %v, want %v", got, tc.urgent)
			}
		})
	}
}
