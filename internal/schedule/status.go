package schedule

import (
	"time"

	"relotrack/internal/model"
)

// StatusChange reports a successful transition to the caller so downstream
// notification can be triggered. Delivery is best-effort and decoupled: a
// failed publish never invalidates the transition itself.
type StatusChange struct {
	MilestoneID int       `json:"milestone_id"`
	ClientID    int       `json:"client_id"`
	NewStatus   string    `json:"new_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Transition applies a status change and returns the updated milestone plus
// the change event. It is the only mutation point for status/completedDate.
//
// All 3x3 transitions are legal, including self-transitions. CompletedDate is
// set to the observation date when moving to completed and cleared on any
// other target status, keeping the invariant
// (status == completed) == (completedDate != nil).
func Transition(m model.Milestone, newStatus string, observed time.Time) (model.Milestone, StatusChange, error) {
	switch newStatus {
	case model.StatusPending, model.StatusCompleted, model.StatusDelayed:
	default:
		return m, StatusChange{}, ErrInvalidStatus
	}

	obs := TruncateDate(observed)
	m.Status = newStatus
	if newStatus == model.StatusCompleted {
		m.CompletedDate = &obs
	} else {
		m.CompletedDate = nil
	}

	change := StatusChange{
		MilestoneID: m.ID,
		ClientID:    m.ClientID,
		NewStatus:   newStatus,
		OccurredAt:  obs,
	}
	return m, change, nil
}
