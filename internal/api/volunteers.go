package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/export"
	"github.com/atharhub/athar/internal/models"
)

type volunteerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Phone       *string `json:"phone"`
	CommitteeID *string `json:"committee_id" validate:"omitempty,uuid"`
	IsActive    *bool   `json:"is_active"`
}

func (r volunteerRequest) model() models.Volunteer {
	v := models.Volunteer{Name: r.Name, Phone: r.Phone, CommitteeID: r.CommitteeID, IsActive: true}
	if r.IsActive != nil {
		v.IsActive = *r.IsActive
	}
	return v
}

func (s *Server) listVolunteers(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListVolunteers(ctx, s.db, c.Query("committee_id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) getVolunteer(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	v, err := db.GetVolunteerByID(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(v)
}

func (s *Server) listVolunteerSubmissions(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListSubmissionsByVolunteer(ctx, s.db, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (s *Server) createVolunteer(c *fiber.Ctx) error {
	var req volunteerRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	id, err := db.CreateVolunteer(ctx, s.db, req.model())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) updateVolunteer(c *fiber.Ctx) error {
	var req volunteerRequest
	if err := s.body(c, &req); err != nil {
		return err
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	v := req.model()
	v.ID = c.Params("id")
	if err := db.UpdateVolunteer(ctx, s.db, v); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) deleteVolunteer(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	if err := db.DeleteVolunteer(ctx, s.db, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// exportVolunteersCSV streams the volunteer roster, optionally one committee,
// as a BOM-prefixed CSV so Excel renders the Arabic names.
func (s *Server) exportVolunteersCSV(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()

	committees, err := db.ListCommittees(ctx, s.db)
	if err != nil {
		return err
	}
	names := committeeNames(committees)

	vols, err := db.ListVolunteers(ctx, s.db, c.Query("committee_id"))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(vols))
	for _, v := range vols {
		rows = append(rows, volunteerRow(v, names))
	}
	data, err := export.CSV([]string{"الاسم", "الهاتف", "اللجنة", "الحالة"}, rows)
	if err != nil {
		return err
	}
	return sendCSV(c, export.CSVFilename("volunteers", s.now().In(s.loc)), data)
}

// exportVolunteersWorkbook builds an XLSX with one sheet per committee plus a
// sheet for unassigned volunteers.
func (s *Server) exportVolunteersWorkbook(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()

	committees, err := db.ListCommittees(ctx, s.db)
	if err != nil {
		return err
	}
	vols, err := db.ListVolunteers(ctx, s.db, "")
	if err != nil {
		return err
	}

	byCommittee := map[string][][]string{}
	var unassigned [][]string
	names := committeeNames(committees)
	for _, v := range vols {
		row := volunteerRow(v, names)
		if v.CommitteeID == nil {
			unassigned = append(unassigned, row)
			continue
		}
		byCommittee[*v.CommitteeID] = append(byCommittee[*v.CommitteeID], row)
	}

	header := []string{"الاسم", "الهاتف", "اللجنة", "الحالة"}
	var sheets []export.SheetSpec
	for _, cm := range committees {
		sheets = append(sheets, export.SheetSpec{Title: cm.Name, Header: header, Rows: byCommittee[cm.ID]})
	}
	if len(unassigned) > 0 || len(sheets) == 0 {
		sheets = append(sheets, export.SheetSpec{Title: "بدون لجنة", Header: header, Rows: unassigned})
	}

	data, err := export.WorkbookBytes(sheets)
	if err != nil {
		return err
	}
	return sendXLSX(c, "volunteers.xlsx", data)
}

func committeeNames(committees []models.Committee) map[string]string {
	names := make(map[string]string, len(committees))
	for _, cm := range committees {
		names[cm.ID] = cm.Name
	}
	return names
}

func volunteerRow(v models.Volunteer, committeeName map[string]string) []string {
	phone, committee := "", ""
	if v.Phone != nil {
		phone = *v.Phone
	}
	if v.CommitteeID != nil {
		committee = committeeName[*v.CommitteeID]
	}
	status := "نشط"
	if !v.IsActive {
		status = "غير نشط"
	}
	return []string{v.Name, phone, committee, status}
}
