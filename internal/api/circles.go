package api

import (
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/export"
	"github.com/atharhub/athar/internal/models"
)

type circleRequest struct {
	Name        string              `json:"name" validate:"required"`
	TeacherName string              `json:"teacher_name" validate:"required"`
	Schedule    []models.CircleSlot `json:"schedule" validate:"required,min=1"`
	IsActive    *bool               `json:"is_active"`
}

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validateSlots(slots []models.CircleSlot) error {
	for _, s := range slots {
		if s.Day < 0 || s.Day > 6 {
			return fiber.NewError(fiber.StatusBadRequest, "slot day must be 0..6")
		}
		if !timeRe.MatchString(s.Time) {
			return fiber.NewError(fiber.StatusBadRequest, "slot time must be HH:MM")
		}
	}
	return nil
}

func (r circleRequest) model() models.QuranCircle {
	c := models.QuranCircle{Name: r.Name, TeacherName: r.TeacherName, Schedule: r.Schedule, IsActive: true}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
	return c
}

func (s *Server) listCircles(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListCircles(ctx, s.db, c.QueryBool("active"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createCircle(c *fiber.Ctx) error {
	var req circleRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	if err := validateSlots(req.Schedule); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateCircle(ctx, s.db, req.model())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateCircle(c *fiber.Ctx) error {
	var req circleRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	if err := validateSlots(req.Schedule); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	circle := req.model()
	circle.ID = c.Params("id")
	if err := db.UpdateCircle(ctx, s.db, circle); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteCircle(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteCircle(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// exportCirclesCSV writes one row per weekly slot of every active circle.
func (s *Server) exportCirclesCSV(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	circles, err := db.ListCircles(ctx, s.db, true)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, circle := range circles {
		for _, slot := range circle.Schedule {
			if slot.Day < 0 || slot.Day > 6 {
				continue
			}
			rows = append(rows, []string{
				circle.Name, circle.TeacherName, arabicDay(time.Weekday(slot.Day)), slot.Time,
			})
		}
	}
	data, err := export.CSV([]string{"الحلقة", "المعلم", "اليوم", "الوقت"}, rows)
	if err != nil {
		return err
	}
	return sendCSV(c, export.CSVFilename("circles", s.now().In(s.loc)), data)
}
