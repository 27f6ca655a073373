package impact

import "github.com/atharhub/athar/internal/models"

// Diff is the participant delta between the persisted state of an activity
// and an edited list submitted from the dashboard.
type Diff struct {
	ToInsert []models.Participant // no id yet: new rows
	ToRemove []models.Participant // persisted rows dropped from the new list
	Kept     []models.Participant // persisted rows still present, left alone
}

// DiffParticipants matches incoming rows against existing ones by id. Rows
// without an id are inserts; existing ids missing from incoming are removals.
// An incoming id with no existing row (stale after a concurrent delete) is
// treated as an insert too — the store regenerates its id. Kept rows are not
// re-scored even when a scoring flag like WoreVest changed, matching the
// dashboard's historical behavior (open product question, see DESIGN.md).
func DiffParticipants(existing, incoming []models.Participant) Diff {
	current := make(map[string]struct{}, len(incoming))
	for _, p := range incoming {
		if p.ID != "" {
			current[p.ID] = struct{}{}
		}
	}
	persisted := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		persisted[p.ID] = struct{}{}
	}

	var d Diff
	for _, p := range existing {
		if _, ok := current[p.ID]; ok {
			d.Kept = append(d.Kept, p)
		} else {
			d.ToRemove = append(d.ToRemove, p)
		}
	}
	for _, p := range incoming {
		if _, ok := persisted[p.ID]; p.ID == "" || !ok {
			d.ToInsert = append(d.ToInsert, p)
		}
	}
	return d
}
