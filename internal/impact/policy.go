package impact

import "github.com/atharhub/athar/internal/models"

// Policy computes the points one participant earns.
type Policy func(models.Participant) int

// VestPolicy scores ethics-call participations: 10 with the vest, 5 without.
func VestPolicy(p models.Participant) int {
	if p.WoreVest {
		return 10
	}
	return 5
}

// FlatPolicy awards the same points to every volunteer, regardless of flags.
func FlatPolicy(points int) Policy {
	return func(models.Participant) int { return points }
}
