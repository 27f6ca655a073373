package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

// InsertSubmissions writes an award batch atomically. One failing row drops
// the whole batch, mirroring the award RPC of the hosted backend this
// replaces.
func InsertSubmissions(ctx context.Context, database *sql.DB, rows []models.Submission) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin awards: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range rows {
		_, err := tx.ExecContext(ctx, `
INSERT INTO activity_submissions
    (volunteer_id, activity_type_id, committee_id, points_awarded, status, description, source_activity_id, wore_vest, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.VolunteerID, s.ActivityTypeID, s.CommitteeID, s.PointsAwarded, s.Status,
			s.Description, s.SourceActivityID, s.WoreVest, s.SubmittedAt)
		if err != nil {
			return fmt.Errorf("insert award for %s: %w", s.VolunteerID, err)
		}
	}
	return tx.Commit()
}

// DeleteSubmissions removes the awards of specific volunteers for one source
// activity. Used when participants are dropped during an edit.
func DeleteSubmissions(ctx context.Context, database *sql.DB, sourceActivityID string, volunteerIDs []string) error {
	if len(volunteerIDs) == 0 {
		return nil
	}
	_, err := database.ExecContext(ctx, `
DELETE FROM activity_submissions
WHERE source_activity_id = $1 AND volunteer_id = ANY($2::uuid[])`, sourceActivityID, volunteerIDs)
	if err != nil {
		return fmt.Errorf("delete awards: %w", err)
	}
	return nil
}

// DeleteSubmissionsByActivity removes every award of a deleted activity.
// Deleting zero rows is fine: partially-awarded activities clean up too.
func DeleteSubmissionsByActivity(ctx context.Context, database *sql.DB, sourceActivityID string) error {
	_, err := database.ExecContext(ctx, `
DELETE FROM activity_submissions WHERE source_activity_id = $1`, sourceActivityID)
	if err != nil {
		return fmt.Errorf("delete activity awards: %w", err)
	}
	return nil
}

func ListSubmissionsByVolunteer(ctx context.Context, database *sql.DB, volunteerID string) ([]models.Submission, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, volunteer_id, activity_type_id, committee_id, points_awarded, status, description, source_activity_id, wore_vest, submitted_at
FROM activity_submissions
WHERE volunteer_id = $1
ORDER BY submitted_at DESC`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Submission
	for rows.Next() {
		var s models.Submission
		var source sql.NullString
		if err := rows.Scan(&s.ID, &s.VolunteerID, &s.ActivityTypeID, &s.CommitteeID, &s.PointsAwarded,
			&s.Status, &s.Description, &source, &s.WoreVest, &s.SubmittedAt); err != nil {
			return nil, err
		}
		s.SourceActivityID = source.String
		out = append(out, s)
	}
	return out, rows.Err()
}
