package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

func CreateCourseAd(ctx context.Context, database *sql.DB, ad models.CourseAd) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `
INSERT INTO course_ads (course_id, ad_number, ad_date, poster_done, content_done)
VALUES ($1, $2, $3::date, $4, $5)
RETURNING id`, ad.CourseID, ad.AdNumber, ad.AdDate, ad.PosterDone, ad.ContentDone).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create ad: %w", err)
	}
	return id, nil
}

// ListUpcomingAds returns ads due on or after the given date, earliest first,
// with the owning course name joined in for the dashboard table.
func ListUpcomingAds(ctx context.Context, database *sql.DB, from string) ([]models.CourseAd, error) {
	rows, err := database.QueryContext(ctx, `
SELECT a.id, a.course_id, c.name, a.ad_number, to_char(a.ad_date, 'YYYY-MM-DD'), a.poster_done, a.content_done
FROM course_ads a
JOIN courses c ON c.id = a.course_id
WHERE a.ad_date >= $1::date
ORDER BY a.ad_date`, from)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanAds(rows)
}

func ListAdsByCourse(ctx context.Context, database *sql.DB, courseID string) ([]models.CourseAd, error) {
	rows, err := database.QueryContext(ctx, `
SELECT a.id, a.course_id, c.name, a.ad_number, to_char(a.ad_date, 'YYYY-MM-DD'), a.poster_done, a.content_done
FROM course_ads a
JOIN courses c ON c.id = a.course_id
WHERE a.course_id = $1
ORDER BY a.ad_number`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course ads: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanAds(rows)
}

func scanAds(rows *sql.Rows) ([]models.CourseAd, error) {
	var out []models.CourseAd
	for rows.Next() {
		var a models.CourseAd
		if err := rows.Scan(&a.ID, &a.CourseID, &a.CourseName, &a.AdNumber, &a.AdDate, &a.PosterDone, &a.ContentDone); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func UpdateCourseAd(ctx context.Context, database *sql.DB, ad models.CourseAd) error {
	_, err := database.ExecContext(ctx, `
UPDATE course_ads
SET ad_number = $2, ad_date = $3::date, poster_done = $4, content_done = $5
WHERE id = $1`, ad.ID, ad.AdNumber, ad.AdDate, ad.PosterDone, ad.ContentDone)
	if err != nil {
		return fmt.Errorf("update ad: %w", err)
	}
	return nil
}

func DeleteCourseAd(ctx context.Context, database *sql.DB, id string) error {
	_, err := database.ExecContext(ctx, `DELETE FROM course_ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	return nil
}
