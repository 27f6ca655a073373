package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/atharhub/athar/internal/models"
)

// ErrBadgeAlreadyAwarded reports the unique (volunteer, badge) constraint.
var ErrBadgeAlreadyAwarded = errors.New("badge already awarded")

const badgeColumns = `id, name, description, icon, color, points_required, created_at`

func scanBadge(row interface{ Scan(...any) error }) (models.Badge, error) {
	var b models.Badge
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Icon, &b.Color, &b.PointsRequired, &b.CreatedAt)
	return b, err
}

func ListBadges(ctx context.Context, database *sql.DB) ([]models.Badge, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+badgeColumns+` FROM badges ORDER BY points_required NULLS LAST, name`)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func GetBadgeByID(ctx context.Context, database *sql.DB, id string) (*models.Badge, error) {
	b, err := scanBadge(database.QueryRowContext(ctx, `SELECT `+badgeColumns+` FROM badges WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func CreateBadge(ctx context.Context, database *sql.DB, b models.Badge) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO badges (name, description, icon, color, points_required)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`, b.Name, b.Description, b.Icon, b.Color, b.PointsRequired).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create badge: %w", err)
	}
	return id, nil
}

func UpdateBadge(ctx context.Context, database *sql.DB, b models.Badge) error {
	_, err := database.ExecContext(ctx, `
UPDATE badges
SET name = $2, description = $3, icon = $4, color = $5, points_required = $6
WHERE id = $1`, b.ID, b.Name, b.Description, b.Icon, b.Color, b.PointsRequired)
	if err != nil {
		return fmt.Errorf("update badge: %w", err)
	}
	return nil
}

func DeleteBadge(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM badges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete badge: %w", err)
	}
	return nil
}

// AwardBadge grants a badge to a volunteer. A second grant of the same badge
// returns ErrBadgeAlreadyAwarded.
func AwardBadge(ctx context.Context, database *sql.DB, volunteerID, badgeID string) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO volunteer_badges (volunteer_id, badge_id)
VALUES ($1, $2)
RETURNING id`, volunteerID, badgeID).Scan(&id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return "", ErrBadgeAlreadyAwarded
	}
	if err != nil {
		return "", fmt.Errorf("award badge: %w", err)
	}
	return id, nil
}

func RevokeBadge(ctx context.Context, database *sql.DB, volunteerID, badgeID string) error {
	_, err := database.ExecContext(ctx, `
DELETE FROM volunteer_badges WHERE volunteer_id = $1 AND badge_id = $2`, volunteerID, badgeID)
	if err != nil {
		return fmt.Errorf("revoke badge: %w", err)
	}
	return nil
}

// ListVolunteerBadges returns the volunteer's awarded badges, newest first.
func ListVolunteerBadges(ctx context.Context, database *sql.DB, volunteerID string) ([]models.VolunteerBadge, error) {
	rows, err := database.QueryContext(ctx, `
SELECT vb.id, vb.volunteer_id, vb.awarded_at,
       b.id, b.name, b.description, b.icon, b.color, b.points_required, b.created_at
FROM volunteer_badges vb
JOIN badges b ON b.id = vb.badge_id
WHERE vb.volunteer_id = $1
ORDER BY vb.awarded_at DESC`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list volunteer badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.VolunteerBadge
	for rows.Next() {
		var vb models.VolunteerBadge
		err := rows.Scan(&vb.ID, &vb.VolunteerID, &vb.AwardedAt,
			&vb.Badge.ID, &vb.Badge.Name, &vb.Badge.Description, &vb.Badge.Icon,
			&vb.Badge.Color, &vb.Badge.PointsRequired, &vb.Badge.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, vb)
	}
	return out, rows.Err()
}
