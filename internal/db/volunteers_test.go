//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"

	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/testutil/testdb"
)

func TestVolunteers_CRUDAndFilter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if err := db.Seed(ctx, h.DB); err != nil {
		t.Fatal(err)
	}
	ethicsID, err := db.GetCommitteeIDByName(ctx, h.DB, "الأخلاقيات")
	if err != nil {
		t.Fatal(err)
	}
	if ethicsID == "" {
		t.Fatal("seed did not create the ethics committee")
	}

	id, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{
		Name: "سارة أحمد", CommitteeID: &ethicsID, IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "خالد", IsActive: true}); err != nil {
		t.Fatal(err)
	}

	byCommittee, err := db.ListVolunteers(ctx, h.DB, ethicsID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byCommittee) != 1 || byCommittee[0].ID != id {
		t.Fatalf("expected only the ethics volunteer, got %#v", byCommittee)
	}

	all, err := db.ListVolunteers(ctx, h.DB, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 volunteers, got %d", len(all))
	}

	v, err := db.GetVolunteerByID(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	v.IsActive = false
	if err := db.UpdateVolunteer(ctx, h.DB, *v); err != nil {
		t.Fatal(err)
	}
	n, err := db.CountActiveVolunteers(ctx, h.DB)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 active volunteer after deactivation, got %d", n)
	}

	if err := db.DeleteVolunteer(ctx, h.DB, id); err != nil {
		t.Fatal(err)
	}
	if _, err := db.GetVolunteerByID(ctx, h.DB, id); err == nil {
		t.Fatal("expected not-found after delete")
	}
}

func TestCourses_ScheduleRoundtrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	end := "2025-03-30"
	interview := "2025-01-10"
	id, err := db.CreateCourse(ctx, h.DB, models.Course{
		Name:          "فقه المعاملات",
		TrainerName:   "د. محمد",
		Room:          "قاعة 2",
		ScheduleDays:  []string{"monday", "wednesday"},
		ScheduleTime:  "18:30",
		HasInterview:  true,
		InterviewDate: &interview,
		TotalLectures: 12,
		StartDate:     "2025-01-13",
		EndDate:       &end,
	})
	if err != nil {
		t.Fatal(err)
	}

	c, err := db.GetCourseByID(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.ScheduleDays) != 2 || c.ScheduleDays[0] != "monday" {
		t.Fatalf("schedule days did not roundtrip: %#v", c.ScheduleDays)
	}
	if c.StartDate != "2025-01-13" || c.EndDate == nil || *c.EndDate != end {
		t.Fatalf("dates did not roundtrip: start=%s end=%v", c.StartDate, c.EndDate)
	}
	if c.InterviewDate == nil || *c.InterviewDate != interview {
		t.Fatalf("interview date did not roundtrip: %v", c.InterviewDate)
	}

	// open-ended course stores NULL end
	c.EndDate = nil
	if err := db.UpdateCourse(ctx, h.DB, *c); err != nil {
		t.Fatal(err)
	}
	c2, err := db.GetCourseByID(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	if c2.EndDate != nil {
		t.Fatalf("expected open-ended course, got end %v", *c2.EndDate)
	}
}

func TestCourseAds_DeleteCascadesWithCourse(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	courseID, err := db.CreateCourse(ctx, h.DB, models.Course{
		Name: "تجويد", TrainerName: "أ. ليلى", ScheduleDays: []string{"friday"},
		ScheduleTime: "17:00", StartDate: "2025-02-07",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateCourseAd(ctx, h.DB, models.CourseAd{
		CourseID: courseID, AdNumber: 1, AdDate: "2025-02-01",
	}); err != nil {
		t.Fatal(err)
	}

	ads, err := db.ListAdsByCourse(ctx, h.DB, courseID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 1 || ads[0].CourseName != "تجويد" {
		t.Fatalf("expected one ad with joined course name, got %#v", ads)
	}

	if err := db.DeleteCourse(ctx, h.DB, courseID); err != nil {
		t.Fatal(err)
	}
	ads, err = db.ListAdsByCourse(ctx, h.DB, courseID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ads) != 0 {
		t.Fatalf("expected ads to cascade with the course, got %d", len(ads))
	}
}
