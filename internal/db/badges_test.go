//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/testutil/testdb"
)

func TestAwardBadge_DuplicateRejected(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	vol, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "ليلى", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	required := 50
	badgeID, err := db.CreateBadge(ctx, h.DB, models.Badge{
		Name: "نجم الشهر", Icon: "star", Color: "#FFD700", PointsRequired: &required,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.AwardBadge(ctx, h.DB, vol, badgeID); err != nil {
		t.Fatal(err)
	}
	if _, err := db.AwardBadge(ctx, h.DB, vol, badgeID); !errors.Is(err, db.ErrBadgeAlreadyAwarded) {
		t.Fatalf("expected ErrBadgeAlreadyAwarded, got %v", err)
	}

	awarded, err := db.ListVolunteerBadges(ctx, h.DB, vol)
	if err != nil {
		t.Fatal(err)
	}
	if len(awarded) != 1 || awarded[0].Badge.Name != "نجم الشهر" {
		t.Fatalf("unexpected badges %#v", awarded)
	}

	if err := db.RevokeBadge(ctx, h.DB, vol, badgeID); err != nil {
		t.Fatal(err)
	}
	awarded, err = db.ListVolunteerBadges(ctx, h.DB, vol)
	if err != nil {
		t.Fatal(err)
	}
	if len(awarded) != 0 {
		t.Fatalf("badge survived the revoke: %d", len(awarded))
	}
}

// Caravan awards are flat: no vest scaling, every volunteer gets the same
// points, and deleting the caravan cascades them away.
func TestAwards_CaravanFlatPoints(t *testing.T) {
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
	typeID, err := db.GetActivityTypeIDByName(ctx, h.DB, models.TypeCaravan)
	if err != nil {
		t.Fatal(err)
	}
	if typeID == "" {
		t.Fatal("activity type not seeded")
	}

	vol, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "خالد", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	move := "07:30"
	caravanID, err := db.CreateCaravan(ctx, h.DB, models.Caravan{
		Name: "قافلة الخير", Type: "إغاثة", Date: "2025-04-05", MoveTime: &move,
	})
	if err != nil {
		t.Fatal(err)
	}

	agg := impact.New(db.Store{DB: h.DB}, zap.NewNop().Sugar())
	act := impact.Activity{
		Kind: models.KindCaravan, ID: caravanID, Name: "قافلة الخير", ActivityTypeID: typeID,
	}
	parts := []models.Participant{
		{VolunteerID: &vol, Name: "خالد", IsVolunteer: true, WoreVest: true},
		{Name: "ضيف"},
	}
	if err := agg.Apply(ctx, act, parts, impact.FlatPolicy(5)); err != nil {
		t.Fatal(err)
	}

	subs, err := db.ListSubmissionsByVolunteer(ctx, h.DB, vol)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].PointsAwarded != 5 {
		t.Fatalf("expected one flat 5-point award, got %#v", subs)
	}
	if subs[0].Description != "Caravan: قافلة الخير" {
		t.Fatalf("unexpected description %q", subs[0].Description)
	}

	if err := agg.Cascade(ctx, act); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteCaravan(ctx, h.DB, caravanID); err != nil {
		t.Fatal(err)
	}
	subs, err = db.ListSubmissionsByVolunteer(ctx, h.DB, vol)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Fatalf("awards survived the cascade: %d", len(subs))
	}
}
