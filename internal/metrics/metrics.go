package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "athar", Name: "http_requests_total", Help: "Handled API requests",
	}, []string{"route", "status"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "athar", Name: "handler_errors_total", Help: "Handler errors",
	})
	AwardsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "athar", Name: "awards_total", Help: "Point awards persisted",
	})
	AwardErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "athar", Name: "award_errors_total", Help: "Failed point-award batches",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "athar", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})

	ActiveVolunteers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "athar", Name: "active_volunteers", Help: "Active volunteer rows",
	})
	ApprovedPoints = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "athar", Name: "approved_points", Help: "Sum of approved award points",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HandlerErrors, AwardsTotal, AwardErrors, DBPing, ActiveVolunteers, ApprovedPoints)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
