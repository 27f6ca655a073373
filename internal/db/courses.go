package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

const courseColumns = `
id, name, trainer_name, trainer_phone, room, schedule_days, schedule_time,
has_interview, to_char(interview_date, 'YYYY-MM-DD'), total_lectures,
to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at`

func scanCourse(row interface{ Scan(...any) error }) (models.Course, error) {
	var c models.Course
	var days []byte
	var interview, end sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.TrainerName, &c.TrainerPhone, &c.Room, &days, &c.ScheduleTime,
		&c.HasInterview, &interview, &c.TotalLectures, &c.StartDate, &end, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(days, &c.ScheduleDays); err != nil {
		return c, fmt.Errorf("schedule_days: %w", err)
	}
	if interview.Valid {
		c.InterviewDate = &interview.String
	}
	if end.Valid {
		c.EndDate = &end.String
	}
	return c, nil
}

func ListCourses(ctx context.Context, database *sql.DB) ([]models.Course, error) {
	rows, err := database.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY schedule_time`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func GetCourseByID(ctx context.Context, database *sql.DB, id string) (*models.Course, error) {
	c, err := scanCourse(database.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCourse(ctx context.Context, database *sql.DB, c models.Course) (string, error) {
	days, err := json.Marshal(c.ScheduleDays)
	if err != nil {
		return "", err
	}
	var id string
	err = database.QueryRowContext(ctx, `
INSERT INTO courses (name, trainer_name, trainer_phone, room, schedule_days, schedule_time,
                     has_interview, interview_date, total_lectures, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::date, $9, $10::date, NULLIF($11, '')::date)
RETURNING id`,
		c.Name, c.TrainerName, c.TrainerPhone, c.Room, days, c.ScheduleTime,
		c.HasInterview, deref(c.InterviewDate), c.TotalLectures, c.StartDate, deref(c.EndDate)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create course: %w", err)
	}
	return id, nil
}

func UpdateCourse(ctx context.Context, database *sql.DB, c models.Course) error {
	days, err := json.Marshal(c.ScheduleDays)
	if err != nil {
		return err
	}
	_, err = database.ExecContext(ctx, `
UPDATE courses
SET name = $2, trainer_name = $3, trainer_phone = $4, room = $5, schedule_days = $6,
    schedule_time = $7, has_interview = $8, interview_date = NULLIF($9, '')::date,
    total_lectures = $10, start_date = $11::date, end_date = NULLIF($12, '')::date
WHERE id = $1`,
		c.ID, c.Name, c.TrainerName, c.TrainerPhone, c.Room, days,
		c.ScheduleTime, c.HasInterview, deref(c.InterviewDate), c.TotalLectures, c.StartDate, deref(c.EndDate))
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func DeleteCourse(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
