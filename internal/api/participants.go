package api

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/models"
)

// participantRequest is shared by the call and event payloads. ID is set for
// rows that already exist (edits keep them untouched) and empty for new ones.
type participantRequest struct {
	ID          string  `json:"id" validate:"omitempty,uuid"`
	VolunteerID *string `json:"volunteer_id" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required"`
	Phone       *string `json:"phone"`
	IsVolunteer bool    `json:"is_volunteer"`
	WoreVest    bool    `json:"wore_vest"`
}

func participantModels(reqs []participantRequest) ([]models.Participant, error) {
	out := make([]models.Participant, 0, len(reqs))
	for _, r := range reqs {
		if r.IsVolunteer && r.VolunteerID == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("participant %q is marked volunteer but has no volunteer_id", r.Name))
		}
		out = append(out, models.Participant{
			ID:          r.ID,
			VolunteerID: r.VolunteerID,
			Name:        r.Name,
			Phone:       r.Phone,
			IsVolunteer: r.IsVolunteer,
			WoreVest:    r.WoreVest,
		})
	}
	return out, nil
}

// activityTypeID resolves a seeded type name; a missing type means the seed
// never ran and awarding cannot proceed.
func (s *Server) activityTypeID(ctx context.Context, name string) (string, error) {
	id, err := db.GetActivityTypeIDByName(ctx, s.db, name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("activity type %q is not seeded", name)
	}
	return id, nil
}
