package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
)

type adRequest struct {
	AdNumber    int    `json:"ad_number" validate:"required,gte=1"`
	AdDate      string `json:"ad_date" validate:"required,datetime=2006-01-02"`
	PosterDone  bool   `json:"poster_done"`
	ContentDone bool   `json:"content_done"`
}

// adView decorates an ad row with the urgency flag the dashboard board shows.
type adView struct {
	models.CourseAd
	Urgent bool `json:"urgent"`
}

func (s *Server) listCourseAds(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	ads, err := db.ListAdsByCourse(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(s.adViews(ads))
}

// listUpcomingAds handles GET /api/v1/ads: every ad due today or later,
// earliest first, flagged urgent when close and unfinished.
func (s *Server) listUpcomingAds(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	today := s.now().In(s.loc).Format("2006-01-02")
	ads, err := db.ListUpcomingAds(ctx, s.db, today)
	if err != nil {
		return err
	}
	return c.JSON(s.adViews(ads))
}

func (s *Server) adViews(ads []models.CourseAd) []adView {
	today := s.now().In(s.loc)
	out := make([]adView, 0, len(ads))
	for _, a := range ads {
		out = append(out, adView{CourseAd: a, Urgent: a.Urgent(today)})
	}
	return out
}

func (s *Server) createCourseAd(c *fiber.Ctx) error {
	var req adRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateCourseAd(ctx, s.db, models.CourseAd{
		CourseID:    c.Params("id"),
		AdNumber:    req.AdNumber,
		AdDate:      req.AdDate,
		PosterDone:  req.PosterDone,
		ContentDone: req.ContentDone,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateCourseAd(c *fiber.Ctx) error {
	var req adRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	err := db.UpdateCourseAd(ctx, s.db, models.CourseAd{
		ID:          c.Params("id"),
		AdNumber:    req.AdNumber,
		AdDate:      req.AdDate,
		PosterDone:  req.PosterDone,
		ContentDone: req.ContentDone,
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteCourseAd(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteCourseAd(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
