package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
)

type trainerRequest struct {
	NameEn         string  `json:"name_en" validate:"required"`
	NameAr         string  `json:"name_ar" validate:"required"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	CommitteeID    *string `json:"committee_id" validate:"omitempty,uuid"`
	IsActive       *bool   `json:"is_active"`
	JoinDate       string  `json:"join_date" validate:"required,datetime=2006-01-02"`
}

func (r trainerRequest) model() models.Trainer {
	t := models.Trainer{
		NameEn:         r.NameEn,
		NameAr:         r.NameAr,
		Phone:          r.Phone,
		Specialization: r.Specialization,
		CommitteeID:    r.CommitteeID,
		IsActive:       true,
		JoinDate:       r.JoinDate,
	}
	if r.IsActive != nil {
		t.IsActive = *r.IsActive
	}
	return t
}

func (s *Server) listTrainers(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListTrainers(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getTrainer(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	trainer, err := db.GetTrainerByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(trainer)
}

func (s *Server) createTrainer(c *fiber.Ctx) error {
	var req trainerRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateTrainer(ctx, s.db, req.model())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateTrainer(c *fiber.Ctx) error {
	var req trainerRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	trainer := req.model()
	trainer.ID = c.Params("id")
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.UpdateTrainer(ctx, s.db, trainer); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteTrainer(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteTrainer(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
