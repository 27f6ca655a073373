package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/models"
)

// caravansCommitteeName matches the seeded committee that owns caravan awards.
const caravansCommitteeName = "القوافل"

// caravanPoints is flat: caravan crews never wear vests.
const caravanPoints = 5

type caravanRequest struct {
	Name           string               `json:"name" validate:"required"`
	Type           string               `json:"type"`
	Location       *string              `json:"location"`
	Date           string               `json:"date" validate:"required,datetime=2006-01-02"`
	MoveTime       *string              `json:"move_time"`
	ActualMoveTime *string              `json:"actual_move_time"`
	BusArrivalTime *string              `json:"bus_arrival_time"`
	ReturnTime     *string              `json:"return_time"`
	Participants   []participantRequest `json:"participants" validate:"dive"`
}

func (r caravanRequest) model() models.Caravan {
	return models.Caravan{
		Name:           r.Name,
		Type:           r.Type,
		Location:       r.Location,
		Date:           r.Date,
		MoveTime:       r.MoveTime,
		ActualMoveTime: r.ActualMoveTime,
		BusArrivalTime: r.BusArrivalTime,
		ReturnTime:     r.ReturnTime,
	}
}

func (s *Server) listCaravans(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListCaravans(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getCaravan(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	caravan, err := db.GetCaravanByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(caravan)
}

func (s *Server) listCaravanParticipants(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListParticipants(ctx, s.db, models.KindCaravan, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// createCaravan writes the caravan row, then participants and flat awards.
// Award failures are best-effort, same as calls and events.
func (s *Server) createCaravan(c *fiber.Ctx) error {
	var req caravanRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	id, err := db.CreateCaravan(ctx, s.db, req.model())
	if err != nil {
		return err
	}

	act, err := s.caravanActivity(ctx, id, req.Name)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": id}
	if err := s.agg.Apply(ctx, act, parts, impact.FlatPolicy(caravanPoints)); err != nil {
		s.log.Errorw("caravan awards", "caravan", id, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) updateCaravan(c *fiber.Ctx) error {
	var req caravanRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	caravan := req.model()
	caravan.ID = c.Params("id")
	if err := db.UpdateCaravan(ctx, s.db, caravan); err != nil {
		return err
	}

	act, err := s.caravanActivity(ctx, caravan.ID, req.Name)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": caravan.ID}
	if err := s.agg.ApplyEdit(ctx, act, parts, impact.FlatPolicy(caravanPoints)); err != nil {
		s.log.Errorw("caravan awards", "caravan", caravan.ID, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.JSON(resp)
}

func (s *Server) deleteCaravan(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	if err := s.agg.Cascade(ctx, impact.Activity{Kind: models.KindCaravan, ID: id}); err != nil {
		return err
	}
	if err := db.DeleteCaravan(ctx, s.db, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// caravanActivity attributes caravan awards to the caravans committee when it
// exists.
func (s *Server) caravanActivity(ctx context.Context, id, name string) (impact.Activity, error) {
	typeID, err := s.activityTypeID(ctx, models.TypeCaravan)
	if err != nil {
		return impact.Activity{}, err
	}
	act := impact.Activity{
		Kind:           models.KindCaravan,
		ID:             id,
		Name:           name,
		ActivityTypeID: typeID,
	}
	committeeID, err := db.GetCommitteeIDByName(ctx, s.db, caravansCommitteeName)
	if err != nil {
		return impact.Activity{}, err
	}
	if committeeID != "" {
		act.CommitteeID = &committeeID
	}
	return act, nil
}
