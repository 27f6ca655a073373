package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

func ListParticipants(ctx context.Context, database *sql.DB, kind models.ActivityKind, activityID string) ([]models.Participant, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, activity_kind, activity_id, volunteer_id, name, phone, is_volunteer, wore_vest, created_at
FROM participants
WHERE activity_kind = $1 AND activity_id = $2
ORDER BY created_at`, string(kind), activityID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.ActivityKind, &p.ActivityID, &p.VolunteerID, &p.Name, &p.Phone, &p.IsVolunteer, &p.WoreVest, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func InsertParticipants(ctx context.Context, database *sql.DB, rows []models.Participant) error {
	for _, p := range rows {
		_, err := database.ExecContext(ctx, `
INSERT INTO participants (activity_kind, activity_id, volunteer_id, name, phone, is_volunteer, wore_vest)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			string(p.ActivityKind), p.ActivityID, p.VolunteerID, p.Name, p.Phone, p.IsVolunteer, p.WoreVest)
		if err != nil {
			return fmt.Errorf("insert participant %s: %w", p.Name, err)
		}
	}
	return nil
}

func DeleteParticipants(ctx context.Context, database *sql.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := database.ExecContext(ctx, `DELETE FROM participants WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return fmt.Errorf("delete participants: %w", err)
	}
	return nil
}

func DeleteParticipantsByActivity(ctx context.Context, database *sql.DB, kind models.ActivityKind, activityID string) error {
	_, err := database.ExecContext(ctx, `
DELETE FROM participants WHERE activity_kind = $1 AND activity_id = $2`, string(kind), activityID)
	if err != nil {
		return fmt.Errorf("delete activity participants: %w", err)
	}
	return nil
}
