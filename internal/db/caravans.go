package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

const caravanColumns = `id, name, type, location, to_char(date, 'YYYY-MM-DD'), move_time, actual_move_time, bus_arrival_time, return_time, created_at`

func scanCaravan(row interface{ Scan(...any) error }) (models.Caravan, error) {
	var c models.Caravan
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Location, &c.Date,
		&c.MoveTime, &c.ActualMoveTime, &c.BusArrivalTime, &c.ReturnTime, &c.CreatedAt)
	return c, err
}

func ListCaravans(ctx context.Context, database *sql.DB) ([]models.Caravan, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+caravanColumns+` FROM caravans ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list caravans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Caravan
	for rows.Next() {
		c, err := scanCaravan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func GetCaravanByID(ctx context.Context, database *sql.DB, id string) (*models.Caravan, error) {
	c, err := scanCaravan(database.QueryRowContext(ctx, `SELECT `+caravanColumns+` FROM caravans WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCaravan(ctx context.Context, database *sql.DB, c models.Caravan) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO caravans (name, type, location, date, move_time, actual_move_time, bus_arrival_time, return_time)
VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)
RETURNING id`, c.Name, c.Type, c.Location, c.Date,
		c.MoveTime, c.ActualMoveTime, c.BusArrivalTime, c.ReturnTime).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create caravan: %w", err)
	}
	return id, nil
}

func UpdateCaravan(ctx context.Context, database *sql.DB, c models.Caravan) error {
	_, err := database.ExecContext(ctx, `
UPDATE caravans
SET name = $2, type = $3, location = $4, date = $5::date,
    move_time = $6, actual_move_time = $7, bus_arrival_time = $8, return_time = $9
WHERE id = $1`, c.ID, c.Name, c.Type, c.Location, c.Date,
		c.MoveTime, c.ActualMoveTime, c.BusArrivalTime, c.ReturnTime)
	if err != nil {
		return fmt.Errorf("update caravan: %w", err)
	}
	return nil
}

func DeleteCaravan(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM caravans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete caravan: %w", err)
	}
	return nil
}
