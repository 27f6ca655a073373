package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/export"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/models"
)

// eventPoints is the flat award for showing up to an event.
const eventPoints = 5

type eventRequest struct {
	Name         string               `json:"name" validate:"required"`
	Date         string               `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string               `json:"time" validate:"required"`
	Location     *string              `json:"location"`
	CommitteeID  *string              `json:"committee_id" validate:"omitempty,uuid"`
	Description  *string              `json:"description"`
	Participants []participantRequest `json:"participants" validate:"dive"`
}

func (r eventRequest) model() models.Event {
	return models.Event{
		Name:        r.Name,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		CommitteeID: r.CommitteeID,
		Description: r.Description,
	}
}

func (s *Server) listEvents(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListEvents(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getEvent(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	ev, err := db.GetEventByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ev)
}

func (s *Server) listEventParticipants(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListParticipants(ctx, s.db, models.KindEvent, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// createEvent writes the event row, then its participants and their flat
// awards. An award failure does not undo the event; the response carries the
// error for the dashboard to surface.
func (s *Server) createEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	id, err := db.CreateEvent(ctx, s.db, req.model())
	if err != nil {
		return err
	}

	act, err := s.eventActivity(ctx, id, req.Name, req.CommitteeID)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": id}
	if err := s.agg.Apply(ctx, act, parts, impact.FlatPolicy(eventPoints)); err != nil {
		s.log.Errorw("event awards", "event", id, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) updateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	parts, err := participantModels(req.Participants)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	ev := req.model()
	ev.ID = c.Params("id")
	if err := db.UpdateEvent(ctx, s.db, ev); err != nil {
		return err
	}

	act, err := s.eventActivity(ctx, ev.ID, req.Name, req.CommitteeID)
	if err != nil {
		return err
	}
	resp := fiber.Map{"id": ev.ID}
	if err := s.agg.ApplyEdit(ctx, act, parts, impact.FlatPolicy(eventPoints)); err != nil {
		s.log.Errorw("event awards", "event", ev.ID, "err", err)
		resp["award_error"] = err.Error()
	}
	return c.JSON(resp)
}

// deleteEvent removes the awards and participants first, then the event row.
func (s *Server) deleteEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	if err := s.agg.Cascade(ctx, impact.Activity{Kind: models.KindEvent, ID: id}); err != nil {
		return err
	}
	if err := db.DeleteEvent(ctx, s.db, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) eventActivity(ctx context.Context, id, name string, committeeID *string) (impact.Activity, error) {
	typeID, err := s.activityTypeID(ctx, models.TypeEventParticipant)
	if err != nil {
		return impact.Activity{}, err
	}
	return impact.Activity{
		Kind:           models.KindEvent,
		ID:             id,
		Name:           name,
		CommitteeID:    committeeID,
		ActivityTypeID: typeID,
	}, nil
}

// exportEventWorkbook builds a one-sheet XLSX of the event's participants.
func (s *Server) exportEventWorkbook(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()

	ev, err := db.GetEventByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	parts, err := db.ListParticipants(ctx, s.db, models.KindEvent, ev.ID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(parts))
	for _, p := range parts {
		phone := ""
		if p.Phone != nil {
			phone = *p.Phone
		}
		kind := "ضيف"
		if p.IsVolunteer {
			kind = "متطوع"
		}
		rows = append(rows, []string{p.Name, phone, kind})
	}
	data, err := export.WorkbookBytes([]export.SheetSpec{{
		Title:  "المشاركون",
		Header: []string{"الاسم", "الهاتف", "الصفة"},
		Rows:   rows,
	}})
	if err != nil {
		return err
	}
	return sendXLSX(c, export.XLSXFilename(ev.Name, s.now().In(s.loc)), data)
}
