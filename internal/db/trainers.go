package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

const trainerColumns = `id, name_en, name_ar, phone, specialization, committee_id, is_active, to_char(join_date, 'YYYY-MM-DD'), created_at`

func scanTrainer(row interface{ Scan(...any) error }) (models.Trainer, error) {
	var t models.Trainer
	err := row.Scan(&t.ID, &t.NameEn, &t.NameAr, &t.Phone, &t.Specialization,
		&t.CommitteeID, &t.IsActive, &t.JoinDate, &t.CreatedAt)
	return t, err
}

func ListTrainers(ctx context.Context, database *sql.DB) ([]models.Trainer, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+trainerColumns+` FROM trainers ORDER BY name_en`)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func GetTrainerByID(ctx context.Context, database *sql.DB, id string) (*models.Trainer, error) {
	t, err := scanTrainer(database.QueryRowContext(ctx, `SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateTrainer(ctx context.Context, database *sql.DB, t models.Trainer) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO trainers (name_en, name_ar, phone, specialization, committee_id, is_active, join_date)
VALUES ($1, $2, $3, $4, $5, $6, $7::date)
RETURNING id`, t.NameEn, t.NameAr, t.Phone, t.Specialization, t.CommitteeID, t.IsActive, t.JoinDate).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create trainer: %w", err)
	}
	return id, nil
}

func UpdateTrainer(ctx context.Context, database *sql.DB, t models.Trainer) error {
	_, err := database.ExecContext(ctx, `
UPDATE trainers
SET name_en = $2, name_ar = $3, phone = $4, specialization = $5,
    committee_id = $6, is_active = $7, join_date = $8::date
WHERE id = $1`, t.ID, t.NameEn, t.NameAr, t.Phone, t.Specialization, t.CommitteeID, t.IsActive, t.JoinDate)
	if err != nil {
		return fmt.Errorf("update trainer: %w", err)
	}
	return nil
}

func DeleteTrainer(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	return nil
}
