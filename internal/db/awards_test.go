//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/testutil/testdb"
)

// Full award round trip against a real database: create a call, attach
// participants, check the submissions, then cascade the delete.
func TestAwards_CallLifecycle(t *testing.T) {
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
	typeID, err := db.GetActivityTypeIDByName(ctx, h.DB, models.TypeEthicsPublishing)
	if err != nil {
		t.Fatal(err)
	}
	if typeID == "" {
		t.Fatal("activity type not seeded")
	}

	vested, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "أحمد", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	bare, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "عمر", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	callID, err := db.CreateCall(ctx, h.DB, models.EthicsCall{
		Name: "نزولة الجمعة", Date: "2025-04-04", CallsCount: 30, AcceptedCount: 12,
	})
	if err != nil {
		t.Fatal(err)
	}

	agg := impact.New(db.Store{DB: h.DB}, zap.NewNop().Sugar())
	act := impact.Activity{
		Kind: models.KindEthicsCall, ID: callID, Name: "نزولة الجمعة", ActivityTypeID: typeID,
	}
	parts := []models.Participant{
		{VolunteerID: &vested, Name: "أحمد", IsVolunteer: true, WoreVest: true},
		{VolunteerID: &bare, Name: "عمر", IsVolunteer: true, WoreVest: false},
		{Name: "ضيف", IsVolunteer: false},
	}
	if err := agg.Apply(ctx, act, parts, impact.VestPolicy); err != nil {
		t.Fatal(err)
	}

	stored, err := db.ListParticipants(ctx, h.DB, models.KindEthicsCall, callID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(stored))
	}

	subs, err := db.ListSubmissionsByVolunteer(ctx, h.DB, vested)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].PointsAwarded != 10 {
		t.Fatalf("expected one 10-point award for the vested volunteer, got %#v", subs)
	}
	if subs[0].SourceActivityID != callID {
		t.Fatalf("award not linked to its call: %q", subs[0].SourceActivityID)
	}
	if subs[0].Description != "مكالمات: نزولة الجمعة" {
		t.Fatalf("unexpected description %q", subs[0].Description)
	}

	subs, err = db.ListSubmissionsByVolunteer(ctx, h.DB, bare)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].PointsAwarded != 5 {
		t.Fatalf("expected one 5-point award without vest, got %#v", subs)
	}

	total, err := db.SumApprovedPoints(ctx, h.DB)
	if err != nil {
		t.Fatal(err)
	}
	if total != 15 {
		t.Fatalf("expected 15 approved points, got %d", total)
	}

	board, err := db.Leaderboard(ctx, h.DB, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != 2 || board[0].Name != "أحمد" || board[0].TotalPoints != 10 {
		t.Fatalf("unexpected leaderboard %#v", board)
	}

	// delete cascades awards and participants by source id
	if err := agg.Cascade(ctx, act); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteCall(ctx, h.DB, callID); err != nil {
		t.Fatal(err)
	}
	stored, err = db.ListParticipants(ctx, h.DB, models.KindEthicsCall, callID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 0 {
		t.Fatalf("participants survived the cascade: %d", len(stored))
	}
	subs, err = db.ListSubmissionsByVolunteer(ctx, h.DB, vested)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Fatalf("awards survived the cascade: %d", len(subs))
	}
}

func TestMonthCallStats(t *testing.T) {
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
	vol, err := db.CreateVolunteer(ctx, h.DB, models.Volunteer{Name: "نور", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	inMonth, err := db.CreateCall(ctx, h.DB, models.EthicsCall{
		Name: "نزولة ١", Date: "2025-05-02", CallsCount: 20, AcceptedCount: 8,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateCall(ctx, h.DB, models.EthicsCall{
		Name: "نزولة ٢", Date: "2025-06-01", CallsCount: 50, AcceptedCount: 1,
	}); err != nil {
		t.Fatal(err)
	}

	if err := db.InsertParticipants(ctx, h.DB, []models.Participant{
		{ActivityKind: models.KindEthicsCall, ActivityID: inMonth, VolunteerID: &vol, Name: "نور", IsVolunteer: true},
		{ActivityKind: models.KindEthicsCall, ActivityID: inMonth, Name: "ضيف"},
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := db.MonthCallStats(ctx, h.DB, "2025-05")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Calls != 20 || stats.Accepted != 8 || stats.Volunteers != 1 {
		t.Fatalf("unexpected stats %#v", stats)
	}
}
