package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/models"
)

// ethicsCommitteeName matches the seeded committee that owns call awards.
const ethicsCommitteeName = "الأخلاقيات"

type callRequest struct {
	Name          string               `json:"name" validate:"required"`
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
	CallsCount    int                  `json:"calls_count" validate:"gte=0"`
	AcceptedCount int                  `json:"accepted_count" validate:"gte=0"`
	DriveLink     *string              `json:"drive_link"`
	Participants  []participantRequest `json:"participants" validate:"dive"`
}

func (r callRequest) model() models.EthicsCall {
	return models.EthicsCall{
		Name:          r.Name,
		Date:          r.Date,
		CallsCount:    r.CallsCount,
		AcceptedCount: r.AcceptedCount,
		DriveLink:     r.DriveLink,
	}
}

func (s *Server) listCalls(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListCalls(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getCall(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	call, err := db.GetCallByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(call)
}

func (s *Server) listCallParticipants(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListParticipants(ctx, s.db, models.KindEthicsCall, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// monthCallStats handles GET /api/v1/ethics-calls/stats?month=YYYY-MM,
// defaulting to the current month.
func (s *Server) monthCallStats(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		month = s.now().In(s.loc).Format("2006-01")
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	stats, err := db.MonthCallStats(ctx, s.db, month)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// createCall writes the call row, then participants and vest-scaled awards.
// Award failures are best-effort: the call stays, the error is returned for
// the dashboard to surface.
func (s *Server) createCall(c *fiber.Ctx) error {
	var req callRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	id, err := db.CreateCall(ctx, s.db, req.model())
	if err != nil {
		return err
	}

	act, err := s.callActivity(ctx, id, req.Name)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": id}
	if err := s.agg.Apply(ctx, act, parts, impact.VestPolicy); err != nil {
		s.log.Errorw("call awards", "call", id, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// updateCall reconciles participants by id: dropped rows lose their awards,
// new rows gain both; untouched rows keep whatever they were scored before.
func (s *Server) updateCall(c *fiber.Ctx) error {
	var req callRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	call := req.model()
	call.ID = c.Params("id")
	if err := db.UpdateCall(ctx, s.db, call); err != nil {
		return err
	}

	act, err := s.callActivity(ctx, call.ID, req.Name)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": call.ID}
	if err := s.agg.ApplyEdit(ctx, act, parts, impact.VestPolicy); err != nil {
		s.log.Errorw("call awards", "call", call.ID, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.JSON(resp)
}

func (s *Server) deleteCall(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	if err := s.agg.Cascade(ctx, impact.Activity{Kind: models.KindEthicsCall, ID: id}); err != nil {
		return err
	}
	if err := db.DeleteCall(ctx, s.db, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// callActivity attributes call awards to the ethics committee when it exists.
func (s *Server) callActivity(ctx context.Context, id, name string) (impact.Activity, error) {
	typeID, err := s.activityTypeID(ctx, models.TypeEthicsPublishing)
	if err != nil {
		return impact.Activity{}, err
	}
	act := impact.Activity{
		Kind:           models.KindEthicsCall,
		ID:             id,
		Name:           name,
		ActivityTypeID: typeID,
	}
	committeeID, err := db.GetCommitteeIDByName(ctx, s.db, ethicsCommitteeName)
	if err != nil {
		return impact.Activity{}, err
	}
	if committeeID != "" {
		act.CommitteeID = &committeeID
	}
	return act, nil
}
