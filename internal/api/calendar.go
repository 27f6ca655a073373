package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/schedule"
)

type calendarDay struct {
	Date        string               `json:"date,omitempty"`
	Padding     bool                 `json:"padding,omitempty"`
	IsToday     bool                 `json:"is_today,omitempty"`
	Occurrences []calendarOccurrence `json:"occurrences"`
}

type calendarOccurrence struct {
	SourceID string `json:"source_id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Time     string `json:"time,omitempty"`
	Room     string `json:"room,omitempty"`
}

type calendarResponse struct {
	Month string        `json:"month"`
	Days  []calendarDay `json:"days"`
}

// calendar handles GET /api/v1/courses/calendar?month=YYYY-MM. With no month
// it renders the current one. The grid starts weeks on Saturday and pads only
// before the first of the month.
func (s *Server) calendar(c *fiber.Ctx) error {
	now := s.now().In(s.loc)
	anchor := now
	if m := c.Query("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, s.loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		anchor = parsed
	}

	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()

	courses, err := db.ListCourses(ctx, s.db)
	if err != nil {
		return err
	}
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, s.loc)
	ads, err := db.ListUpcomingAds(ctx, s.db, firstOfMonth.Format("2006-01-02"))
	if err != nil {
		return err
	}
	events, err := db.ListEvents(ctx, s.db)
	if err != nil {
		return err
	}
	circles, err := db.ListCircles(ctx, s.db, true)
	if err != nil {
		return err
	}

	entries := courseEntries(courses)
	entries = append(entries, adEntries(ads)...)
	entries = append(entries, eventEntries(events)...)
	entries = append(entries, circleEntries(circles)...)

	days := schedule.ProjectMonth(schedule.BuildMonthGrid(anchor, now), entries)

	resp := calendarResponse{
		Month: anchor.Format("2006-01"),
		Days:  make([]calendarDay, 0, len(days)),
	}
	for _, d := range days {
		cell := calendarDay{
			Padding:     d.Padding,
			IsToday:     d.IsToday,
			Occurrences: make([]calendarOccurrence, 0, len(d.Occurrences)),
		}
		if !d.Padding {
			cell.Date = d.Date.Format("2006-01-02")
		}
		for _, oc := range d.Occurrences {
			cell.Occurrences = append(cell.Occurrences, calendarOccurrence{
				SourceID: oc.SourceID,
				Name:     oc.Name,
				Kind:     string(oc.Kind),
				Time:     oc.Time,
				Room:     oc.Room,
			})
		}
		resp.Days = append(resp.Days, cell)
	}
	return c.JSON(resp)
}
