package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

const eventColumns = `id, name, to_char(date, 'YYYY-MM-DD'), time, location, committee_id, description, created_at`

func scanEvent(row interface{ Scan(...any) error }) (models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Name, &e.Date, &e.Time, &e.Location, &e.CommitteeID, &e.Description, &e.CreatedAt)
	return e, err
}

func ListEvents(ctx context.Context, database *sql.DB) ([]models.Event, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date DESC, time`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func GetEventByID(ctx context.Context, database *sql.DB, id string) (*models.Event, error) {
	e, err := scanEvent(database.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func CreateEvent(ctx context.Context, database *sql.DB, e models.Event) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO events (name, date, time, location, committee_id, description)
VALUES ($1, $2::date, $3, $4, $5, $6)
RETURNING id`, e.Name, e.Date, e.Time, e.Location, e.CommitteeID, e.Description).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func UpdateEvent(ctx context.Context, database *sql.DB, e models.Event) error {
	_, err := database.ExecContext(ctx, `
UPDATE events
SET name = $2, date = $3::date, time = $4, location = $5, committee_id = $6, description = $7
WHERE id = $1`, e.ID, e.Name, e.Date, e.Time, e.Location, e.CommitteeID, e.Description)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func DeleteEvent(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
