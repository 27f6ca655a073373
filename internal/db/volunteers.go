package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

func CreateVolunteer(ctx context.Context, database *sql.DB, v models.Volunteer) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO volunteers (name, phone, committee_id, is_active)
VALUES ($1, $2, $3, $4)
RETURNING id`, v.Name, v.Phone, v.CommitteeID, v.IsActive).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create volunteer: %w", err)
	}
	return id, nil
}

// ListVolunteers returns volunteers, optionally filtered to one committee.
func ListVolunteers(ctx context.Context, database *sql.DB, committeeID string) ([]models.Volunteer, error) {
	query := `
SELECT id, name, phone, committee_id, is_active, created_at
FROM volunteers`
	args := []any{}
	if committeeID != "" {
		query += ` WHERE committee_id = $1`
		args = append(args, committeeID)
	}
	query += ` ORDER BY name`

	rows, err := database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Volunteer
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.CommitteeID, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func GetVolunteerByID(ctx context.Context, database *sql.DB, id string) (*models.Volunteer, error) {
	var v models.Volunteer
	err := database.QueryRowContext(ctx, `
SELECT id, name, phone, committee_id, is_active, created_at
FROM volunteers WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Phone, &v.CommitteeID, &v.IsActive, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func UpdateVolunteer(ctx context.Context, database *sql.DB, v models.Volunteer) error {
	_, err := database.ExecContext(ctx, `
UPDATE volunteers
SET name = $2, phone = $3, committee_id = $4, is_active = $5
WHERE id = $1`, v.ID, v.Name, v.Phone, v.CommitteeID, v.IsActive)
	if err != nil {
		return fmt.Errorf("update volunteer: %w", err)
	}
	return nil
}

func DeleteVolunteer(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	return nil
}

// Leaderboard sums approved award points per volunteer, highest first.
func Leaderboard(ctx context.Context, database *sql.DB, limit int) ([]models.VolunteerWithPoints, error) {
	rows, err := database.QueryContext(ctx, `
SELECT v.id, v.name, c.name,
       COALESCE(SUM(s.points_awarded) FILTER (WHERE s.status = 'approved'), 0) AS total_points
FROM volunteers v
LEFT JOIN committees c ON c.id = v.committee_id
LEFT JOIN activity_submissions s ON s.volunteer_id = v.id
WHERE v.is_active
GROUP BY v.id, v.name, c.name
ORDER BY total_points DESC, v.name
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.VolunteerWithPoints
	for rows.Next() {
		var row models.VolunteerWithPoints
		if err := rows.Scan(&row.ID, &row.Name, &row.CommitteeName, &row.TotalPoints); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountActiveVolunteers and SumApprovedPoints feed the dashboard gauges.
func CountActiveVolunteers(ctx context.Context, database *sql.DB) (int, error) {
	var n int
	err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM volunteers WHERE is_active`).Scan(&n)
	return n, err
}

func SumApprovedPoints(ctx context.Context, database *sql.DB) (int, error) {
	var n int
	err := database.QueryRowContext(ctx, `
SELECT COALESCE(SUM(points_awarded), 0) FROM activity_submissions WHERE status = 'approved'`).Scan(&n)
	return n, err
}
