package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
)

type committeeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (s *Server) listCommittees(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListCommittees(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createCommittee(c *fiber.Ctx) error {
	var req committeeRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateCommittee(ctx, s.db, models.Committee{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateCommittee(c *fiber.Ctx) error {
	var req committeeRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	err := db.UpdateCommittee(ctx, s.db, models.Committee{
		ID: c.Params("id"), Name: req.Name, Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteCommittee(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteCommittee(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
