package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

const callColumns = `id, name, to_char(date, 'YYYY-MM-DD'), calls_count, accepted_count, drive_link, created_at, updated_at`

func scanCall(row interface{ Scan(...any) error }) (models.EthicsCall, error) {
	var c models.EthicsCall
	err := row.Scan(&c.ID, &c.Name, &c.Date, &c.CallsCount, &c.AcceptedCount, &c.DriveLink, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func ListCalls(ctx context.Context, database *sql.DB) ([]models.EthicsCall, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+callColumns+` FROM ethics_calls ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.EthicsCall
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func GetCallByID(ctx context.Context, database *sql.DB, id string) (*models.EthicsCall, error) {
	c, err := scanCall(database.QueryRowContext(ctx, `SELECT `+callColumns+` FROM ethics_calls WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCall(ctx context.Context, database *sql.DB, c models.EthicsCall) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO ethics_calls (name, date, calls_count, accepted_count, drive_link)
VALUES ($1, $2::date, $3, $4, $5)
RETURNING id`, c.Name, c.Date, c.CallsCount, c.AcceptedCount, c.DriveLink).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create call: %w", err)
	}
	return id, nil
}

func UpdateCall(ctx context.Context, database *sql.DB, c models.EthicsCall) error {
	_, err := database.ExecContext(ctx, `
UPDATE ethics_calls
SET name = $2, date = $3::date, calls_count = $4, accepted_count = $5, drive_link = $6, updated_at = now()
WHERE id = $1`, c.ID, c.Name, c.Date, c.CallsCount, c.AcceptedCount, c.DriveLink)
	if err != nil {
		return fmt.Errorf("update call: %w", err)
	}
	return nil
}

func DeleteCall(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM ethics_calls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete call: %w", err)
	}
	return nil
}

// MonthCallStats aggregates the calls of one calendar month (YYYY-MM) for the
// dashboard cards: total calls made, total accepted, distinct volunteers.
func MonthCallStats(ctx context.Context, database *sql.DB, month string) (models.CallStats, error) {
	var s models.CallStats
	err := database.QueryRowContext(ctx, `
SELECT COALESCE(SUM(c.calls_count), 0),
       COALESCE(SUM(c.accepted_count), 0),
       COUNT(DISTINCT p.volunteer_id) FILTER (WHERE p.volunteer_id IS NOT NULL)
FROM ethics_calls c
LEFT JOIN participants p ON p.activity_kind = 'ethics_call' AND p.activity_id = c.id
WHERE to_char(c.date, 'YYYY-MM') = $1`, month).Scan(&s.Calls, &s.Accepted, &s.Volunteers)
	if err != nil {
		return s, fmt.Errorf("month call stats: %w", err)
	}
	return s, nil
}
