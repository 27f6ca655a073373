package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/export"
	"github.com/atharhub/athar/internal/models"
	"github.com/atharhub/athar/internal/schedule"
)

type courseRequest struct {
	Name          string   `json:"name" validate:"required"`
	TrainerName   string   `json:"trainer_name" validate:"required"`
	TrainerPhone  *string  `json:"trainer_phone"`
	Room          string   `json:"room"`
	ScheduleDays  []string `json:"schedule_days" validate:"required,min=1,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	ScheduleTime  string   `json:"schedule_time" validate:"required"`
	HasInterview  bool     `json:"has_interview"`
	InterviewDate *string  `json:"interview_date" validate:"omitempty,datetime=2006-01-02"`
	TotalLectures int      `json:"total_lectures" validate:"gte=0"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r courseRequest) model() models.Course {
	return models.Course{
		Name:          r.Name,
		TrainerName:   r.TrainerName,
		TrainerPhone:  r.TrainerPhone,
		Room:          r.Room,
		ScheduleDays:  r.ScheduleDays,
		ScheduleTime:  r.ScheduleTime,
		HasInterview:  r.HasInterview,
		InterviewDate: r.InterviewDate,
		TotalLectures: r.TotalLectures,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

func (s *Server) listCourses(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListCourses(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getCourse(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	course, err := db.GetCourseByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(course)
}

func (s *Server) createCourse(c *fiber.Ctx) error {
	var req courseRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	if req.HasInterview && req.InterviewDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "interview_date is required when has_interview is set")
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateCourse(ctx, s.db, req.model())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateCourse(c *fiber.Ctx) error {
	var req courseRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	course := req.model()
	course.ID = c.Params("id")
	if err := db.UpdateCourse(ctx, s.db, course); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// deleteCourse relies on the FK cascade to drop the course's ads with it.
func (s *Server) deleteCourse(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteCourse(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) exportCoursesCSV(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	courses, err := db.ListCourses(ctx, s.db)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		days := make([]string, 0, len(course.ScheduleDays))
		for _, name := range course.ScheduleDays {
			if d, ok := schedule.ParseWeekday(name); ok {
				days = append(days, arabicDay(d))
			}
		}
		end := ""
		if course.EndDate != nil {
			end = *course.EndDate
		}
		rows = append(rows, []string{
			course.Name, course.TrainerName, course.Room,
			strings.Join(days, "، "), course.ScheduleTime,
			course.StartDate, end,
		})
	}
	data, err := export.CSV([]string{"الكورس", "المدرب", "القاعة", "الأيام", "الوقت", "البداية", "النهاية"}, rows)
	if err != nil {
		return err
	}
	return sendCSV(c, export.CSVFilename("courses", s.now().In(s.loc)), data)
}
