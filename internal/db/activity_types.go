package db

import (
	"context"
	"database/sql"

	"github.com/atharhub/athar/internal/models"
)

// GetActivityTypeIDByName resolves a seeded type name to its id. Returns ""
// when the type is missing (award flows treat that as a configuration error).
func GetActivityTypeIDByName(ctx context.Context, database *sql.DB, name string) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `SELECT id FROM activity_types WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func ListActivityTypes(ctx context.Context, database *sql.DB) ([]models.ActivityType, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, name, label, default_points FROM activity_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.ActivityType
	for rows.Next() {
		var t models.ActivityType
		if err := rows.Scan(&t.ID, &t.Name, &t.Label, &t.DefaultPoints); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
