package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

func ListCommittees(ctx context.Context, database *sql.DB) ([]models.Committee, error) {
	rows, err := database.QueryContext(ctx, `SELECT id, name, description FROM committees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list committees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Committee
	for rows.Next() {
		var c models.Committee
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCommitteeIDByName resolves a committee name to its id, "" when absent.
// The ethics committee is looked up this way when attributing call awards.
func GetCommitteeIDByName(ctx context.Context, database *sql.DB, name string) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `SELECT id FROM committees WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func CreateCommittee(ctx context.Context, database *sql.DB, c models.Committee) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO committees (name, description) VALUES ($1, $2) RETURNING id`, c.Name, c.Description).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create committee: %w", err)
	}
	return id, nil
}

func UpdateCommittee(ctx context.Context, database *sql.DB, c models.Committee) error {
	_, err := database.ExecContext(ctx, `
UPDATE committees SET name = $2, description = $3 WHERE id = $1`, c.ID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("update committee: %w", err)
	}
	return nil
}

func DeleteCommittee(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM committees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete committee: %w", err)
	}
	return nil
}
