package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
)

type badgeRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description"`
	Icon           string  `json:"icon"`
	Color          string  `json:"color"`
	PointsRequired *int    `json:"points_required" validate:"omitempty,gte=0"`
}

func (r badgeRequest) model() models.Badge {
	return models.Badge{
		Name:           r.Name,
		Description:    r.Description,
		Icon:           r.Icon,
		Color:          r.Color,
		PointsRequired: r.PointsRequired,
	}
}

type badgeAwardRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required,uuid"`
	BadgeID     string `json:"badge_id" validate:"required,uuid"`
}

func (s *Server) listBadges(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListBadges(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createBadge(c *fiber.Ctx) error {
	var req badgeRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateBadge(ctx, s.db, req.model())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateBadge(c *fiber.Ctx) error {
	var req badgeRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	badge := req.model()
	badge.ID = c.Params("id")
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.UpdateBadge(ctx, s.db, badge); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteBadge(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteBadge(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// awardBadge grants a badge once per volunteer; a repeat grant is a 409 so the
// dashboard can tell the admin instead of silently doubling.
func (s *Server) awardBadge(c *fiber.Ctx) error {
	var req badgeAwardRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.AwardBadge(ctx, s.db, req.VolunteerID, req.BadgeID)
	if errors.Is(err, db.ErrBadgeAlreadyAwarded) {
		return fiber.NewError(fiber.StatusConflict, "badge already awarded to this volunteer")
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) revokeBadge(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.RevokeBadge(ctx, s.db, c.Params("volunteerID"), c.Params("badgeID")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listVolunteerBadges(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListVolunteerBadges(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
