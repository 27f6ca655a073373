// Package api is the HTTP surface of the dashboard: CRUD over the catalog
// tables, the month calendar, the award flows and the file exports.
package api

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/metrics"
	"github.com/atharhub/athar/internal/observability"
)

type Server struct {
	app *fiber.App
	db  *sql.DB
	agg *impact.Aggregator
	log *zap.SugaredLogger
	val *validator.Validate
	loc *time.Location
	now func() time.Time
}

func New(database *sql.DB, agg *impact.Aggregator, log *zap.SugaredLogger, loc *time.Location) *Server {
	s := &Server{
		db:  database,
		agg: agg,
		log: log,
		val: validator.New(),
		loc: loc,
		now: time.Now,
	}
	s.app = fiber.New(fiber.Config{
		AppName:      "athar",
		ErrorHandler: s.errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(s.requestID, s.observe)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.health)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	v1 := s.app.Group("/api/v1")

	v1.Get("/committees", s.listCommittees)
	v1.Post("/committees", s.createCommittee)
	v1.Put("/committees/:id", s.updateCommittee)
	v1.Delete("/committees/:id", s.deleteCommittee)

	v1.Get("/volunteers", s.listVolunteers)
	v1.Get("/volunteers/export", s.exportVolunteersCSV)
	v1.Get("/volunteers/export.xlsx", s.exportVolunteersWorkbook)
	v1.Get("/volunteers/:id", s.getVolunteer)
	v1.Get("/volunteers/:id/submissions", s.listVolunteerSubmissions)
	v1.Get("/volunteers/:id/badges", s.listVolunteerBadges)
	v1.Post("/volunteers", s.createVolunteer)
	v1.Put("/volunteers/:id", s.updateVolunteer)
	v1.Delete("/volunteers/:id", s.deleteVolunteer)

	v1.Get("/courses", s.listCourses)
	v1.Get("/courses/calendar", s.calendar)
	v1.Get("/courses/export", s.exportCoursesCSV)
	v1.Get("/courses/:id", s.getCourse)
	v1.Get("/courses/:id/ads", s.listCourseAds)
	v1.Post("/courses/:id/ads", s.createCourseAd)
	v1.Post("/courses", s.createCourse)
	v1.Put("/courses/:id", s.updateCourse)
	v1.Delete("/courses/:id", s.deleteCourse)

	v1.Get("/ads", s.listUpcomingAds)
	v1.Put("/ads/:id", s.updateCourseAd)
	v1.Delete("/ads/:id", s.deleteCourseAd)

	v1.Get("/circles", s.listCircles)
	v1.Get("/circles/export", s.exportCirclesCSV)
	v1.Post("/circles", s.createCircle)
	v1.Put("/circles/:id", s.updateCircle)
	v1.Delete("/circles/:id", s.deleteCircle)

	v1.Get("/events", s.listEvents)
	v1.Get("/events/:id", s.getEvent)
	v1.Get("/events/:id/participants", s.listEventParticipants)
	v1.Get("/events/:id/export.xlsx", s.exportEventWorkbook)
	v1.Post("/events", s.createEvent)
	v1.Put("/events/:id", s.updateEvent)
	v1.Delete("/events/:id", s.deleteEvent)

	v1.Get("/ethics-calls", s.listCalls)
	v1.Get("/ethics-calls/stats", s.monthCallStats)
	v1.Get("/ethics-calls/:id", s.getCall)
	v1.Get("/ethics-calls/:id/participants", s.listCallParticipants)
	v1.Post("/ethics-calls", s.createCall)
	v1.Put("/ethics-calls/:id", s.updateCall)
	v1.Delete("/ethics-calls/:id", s.deleteCall)

	v1.Get("/caravans", s.listCaravans)
	v1.Get("/caravans/:id", s.getCaravan)
	v1.Get("/caravans/:id/participants", s.listCaravanParticipants)
	v1.Post("/caravans", s.createCaravan)
	v1.Put("/caravans/:id", s.updateCaravan)
	v1.Delete("/caravans/:id", s.deleteCaravan)

	v1.Get("/trainers", s.listTrainers)
	v1.Get("/trainers/:id", s.getTrainer)
	v1.Post("/trainers", s.createTrainer)
	v1.Put("/trainers/:id", s.updateTrainer)
	v1.Delete("/trainers/:id", s.deleteTrainer)

	v1.Get("/badges", s.listBadges)
	v1.Post("/badges", s.createBadge)
	v1.Put("/badges/:id", s.updateBadge)
	v1.Delete("/badges/:id", s.deleteBadge)
	v1.Post("/badges/award", s.awardBadge)
	v1.Delete("/badges/award/:volunteerID/:badgeID", s.revokeBadge)

	v1.Get("/activity-types", s.listActivityTypes)
	v1.Get("/leaderboard", s.leaderboard)
}

// Run blocks serving on addr until Shutdown is called.
func (s *Server) Run(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(10 * time.Second)
}

// errorHandler is the single exit point for handler errors: client errors
// (fiber.Error) pass through with their status, anything else is logged,
// counted and reported before collapsing to a 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	}
	metrics.HandlerErrors.Inc()
	observability.CaptureErrCtx(c.UserContext(), err)
	rid, _ := ctxutil.RequestID(c.UserContext())
	actor, _ := ctxutil.Actor(c.UserContext())
	s.log.Errorw("handler failed",
		"method", c.Method(), "path", c.Path(), "request_id", rid, "actor", actor, "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
}

func (s *Server) health(c *fiber.Ctx) error {
	start := time.Now()
	if err := s.db.PingContext(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db down"})
	}
	metrics.ObserveDBPing(time.Since(start))
	return c.JSON(fiber.Map{"status": "ok"})
}
