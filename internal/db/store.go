package db

import (
	"context"
	"database/sql"

	"github.com/atharhub/athar/internal/models"
)

// Store adapts the package's free functions to the impact.Store interface.
type Store struct {
	DB *sql.DB
}

func (s Store) ListParticipants(ctx context.Context, kind models.ActivityKind, activityID string) ([]models.Participant, error) {
	return ListParticipants(ctx, s.DB, kind, activityID)
}

func (s Store) InsertParticipants(ctx context.Context, rows []models.Participant) error {
	return InsertParticipants(ctx, s.DB, rows)
}

func (s Store) DeleteParticipants(ctx context.Context, ids []string) error {
	return DeleteParticipants(ctx, s.DB, ids)
}

func (s Store) DeleteParticipantsByActivity(ctx context.Context, kind models.ActivityKind, activityID string) error {
	return DeleteParticipantsByActivity(ctx, s.DB, kind, activityID)
}

func (s Store) InsertSubmissions(ctx context.Context, rows []models.Submission) error {
	return InsertSubmissions(ctx, s.DB, rows)
}

func (s Store) DeleteSubmissions(ctx context.Context, sourceActivityID string, volunteerIDs []string) error {
	return DeleteSubmissions(ctx, s.DB, sourceActivityID, volunteerIDs)
}

func (s Store) DeleteSubmissionsByActivity(ctx context.Context, sourceActivityID string) error {
	return DeleteSubmissionsByActivity(ctx, s.DB, sourceActivityID)
}
