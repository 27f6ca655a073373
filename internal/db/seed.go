package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atharhub/athar/internal/models"
)

// Seed inserts the fixed activity-type catalog and the default committees.
// Safe to run on every start.
func Seed(ctx context.Context, database *sql.DB) error {
	types := []struct {
		name, label string
		points      int
	}{
		{models.TypeEthicsPublishing, "نشر أخلاقيات", 5},
		{models.TypeEventParticipant, "مشاركة في إيفينت", 5},
		{models.TypeCourseOrganizing, "تنظيم كورس", 5},
		{models.TypeQuranCircle, "حلقة قرآن", 5},
		{models.TypeCaravan, "قافلة", 5},
	}
	for _, t := range types {
		_, err := database.ExecContext(ctx, `
INSERT INTO activity_types (name, label, default_points)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING`, t.name, t.label, t.points)
		if err != nil {
			return fmt.Errorf("seed activity type %s: %w", t.name, err)
		}
	}

	committees := []string{"الأخلاقيات", "الإيفنتات", "القوافل", "الكورسات", "القرآن"}
	for _, name := range committees {
		_, err := database.ExecContext(ctx, `
INSERT INTO committees (name) VALUES ($1)
ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("seed committee %s: %w", name, err)
		}
	}
	return nil
}
