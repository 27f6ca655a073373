package jobs

import (
	"context"
	"database/sql"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/metrics"
)

// RefreshStats updates the dashboard gauges from the database. Runs on a
// ticker; failures only skip one refresh.
func RefreshStats(database *sql.DB) Job {
	return func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()

		n, err := db.CountActiveVolunteers(ctx, database)
		if err != nil {
			return err
		}
		metrics.ActiveVolunteers.Set(float64(n))

		points, err := db.SumApprovedPoints(ctx, database)
		if err != nil {
			return err
		}
		metrics.ApprovedPoints.Set(float64(points))
		return nil
	}
}
