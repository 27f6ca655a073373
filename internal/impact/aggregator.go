// Package impact persists participation records and the point awards they
// earn. Writes are sequential and best-effort: a failed award is reported to
// the caller but never rolls back the activity or participant rows already
// written (the dashboard surfaces the error and the admin retries).
package impact

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atharhub/athar/internal/metrics"
	"github.com/atharhub/athar/internal/models"
)

// Activity identifies the call/event whose participants are being scored.
type Activity struct {
	Kind           models.ActivityKind
	ID             string
	Name           string
	CommitteeID    *string
	ActivityTypeID string
}

// Store is the persistence surface the aggregator needs. InsertSubmissions
// must be atomic per batch (single transaction), mirroring the award RPC of
// the hosted backend; everything else is a plain row operation.
type Store interface {
	ListParticipants(ctx context.Context, kind models.ActivityKind, activityID string) ([]models.Participant, error)
	InsertParticipants(ctx context.Context, rows []models.Participant) error
	DeleteParticipants(ctx context.Context, ids []string) error
	DeleteParticipantsByActivity(ctx context.Context, kind models.ActivityKind, activityID string) error
	InsertSubmissions(ctx context.Context, rows []models.Submission) error
	DeleteSubmissions(ctx context.Context, sourceActivityID string, volunteerIDs []string) error
	DeleteSubmissionsByActivity(ctx context.Context, sourceActivityID string) error
}

type Aggregator struct {
	store Store
	log   *zap.SugaredLogger
	now   func() time.Time
}

func New(store Store, log *zap.SugaredLogger) *Aggregator {
	return &Aggregator{store: store, log: log, now: time.Now}
}

// Apply records participants for a freshly created activity and awards points
// to its volunteers. Guests are persisted but never scored.
func (a *Aggregator) Apply(ctx context.Context, act Activity, parts []models.Participant, policy Policy) error {
	if len(parts) == 0 {
		return nil
	}
	for i := range parts {
		parts[i].ActivityKind = act.Kind
		parts[i].ActivityID = act.ID
	}
	if err := a.store.InsertParticipants(ctx, parts); err != nil {
		return fmt.Errorf("insert participants: %w", err)
	}
	return a.award(ctx, act, parts, policy)
}

// ApplyEdit reconciles the persisted participant list with an edited one.
// Removed participants lose both their row and their award; new ones get
// both; kept rows are untouched.
func (a *Aggregator) ApplyEdit(ctx context.Context, act Activity, incoming []models.Participant, policy Policy) error {
	existing, err := a.store.ListParticipants(ctx, act.Kind, act.ID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}
	d := DiffParticipants(existing, incoming)

	if len(d.ToRemove) > 0 {
		ids := make([]string, 0, len(d.ToRemove))
		var volIDs []string
		for _, p := range d.ToRemove {
			ids = append(ids, p.ID)
			if p.IsVolunteer && p.VolunteerID != nil {
				volIDs = append(volIDs, *p.VolunteerID)
			}
		}
		if err := a.store.DeleteParticipants(ctx, ids); err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}
		if len(volIDs) > 0 {
			if err := a.store.DeleteSubmissions(ctx, act.ID, volIDs); err != nil {
				return fmt.Errorf("delete awards: %w", err)
			}
		}
	}

	if len(d.ToInsert) > 0 {
		for i := range d.ToInsert {
			d.ToInsert[i].ActivityKind = act.Kind
			d.ToInsert[i].ActivityID = act.ID
		}
		if err := a.store.InsertParticipants(ctx, d.ToInsert); err != nil {
			return fmt.Errorf("insert participants: %w", err)
		}
		if err := a.award(ctx, act, d.ToInsert, policy); err != nil {
			return err
		}
	}
	return nil
}

// Cascade removes every award and participant row of a deleted activity.
// A partially-awarded state (fewer submissions than volunteers) deletes
// cleanly; a failed submission delete is logged and the participant cleanup
// still runs, matching the dashboard's delete flow.
func (a *Aggregator) Cascade(ctx context.Context, act Activity) error {
	if err := a.store.DeleteSubmissionsByActivity(ctx, act.ID); err != nil {
		a.log.Warnw("deleting awards", "activity", act.ID, "err", err)
	}
	if err := a.store.DeleteParticipantsByActivity(ctx, act.Kind, act.ID); err != nil {
		return fmt.Errorf("delete participants: %w", err)
	}
	return nil
}

func (a *Aggregator) award(ctx context.Context, act Activity, parts []models.Participant, policy Policy) error {
	var subs []models.Submission
	for _, p := range parts {
		if !p.IsVolunteer || p.VolunteerID == nil {
			continue
		}
		vest := p.WoreVest
		subs = append(subs, models.Submission{
			VolunteerID:      *p.VolunteerID,
			ActivityTypeID:   act.ActivityTypeID,
			CommitteeID:      act.CommitteeID,
			PointsAwarded:    policy(p),
			Status:           models.SubmissionApproved,
			Description:      act.Kind.DescriptionLabel() + act.Name,
			SourceActivityID: act.ID,
			WoreVest:         &vest,
			SubmittedAt:      a.now(),
		})
	}
	if len(subs) == 0 {
		return nil
	}
	if err := a.store.InsertSubmissions(ctx, subs); err != nil {
		metrics.AwardErrors.Inc()
		return fmt.Errorf("award points: %w", err)
	}
	metrics.AwardsTotal.Add(float64(len(subs)))
	return nil
}
