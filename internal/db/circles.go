package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

func ListCircles(ctx context.Context, database *sql.DB, activeOnly bool) ([]models.QuranCircle, error) {
	query := `SELECT id, name, teacher_name, schedule, is_active, created_at FROM quran_circles`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list circles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.QuranCircle
	for rows.Next() {
		var c models.QuranCircle
		var sched []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.TeacherName, &sched, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sched, &c.Schedule); err != nil {
			return nil, fmt.Errorf("circle %s schedule: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func CreateCircle(ctx context.Context, database *sql.DB, c models.QuranCircle) (string, error) {
	sched, err := json.Marshal(c.Schedule)
	if err != nil {
		return "", err
	}
	var id string
	err = database.QueryRowContext(ctx, `
INSERT INTO quran_circles (name, teacher_name, schedule, is_active)
VALUES ($1, $2, $3, $4)
RETURNING id`, c.Name, c.TeacherName, sched, c.IsActive).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create circle: %w", err)
	}
	return id, nil
}

func UpdateCircle(ctx context.Context, database *sql.DB, c models.QuranCircle) error {
	sched, err := json.Marshal(c.Schedule)
	if err != nil {
		return err
	}
	_, err = database.ExecContext(ctx, `
UPDATE quran_circles
SET name = $2, teacher_name = $3, schedule = $4, is_active = $5
WHERE id = $1`, c.ID, c.Name, c.TeacherName, sched, c.IsActive)
	if err != nil {
		return fmt.Errorf("update circle: %w", err)
	}
	return nil
}

func DeleteCircle(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM quran_circles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete circle: %w", err)
	}
	return nil
}
