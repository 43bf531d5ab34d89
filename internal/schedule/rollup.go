package schedule

import (
	"math"

	"relotrack/internal/model"
)

// Stats is the per-client aggregate over its milestone set.
type Stats struct {
	Completed         int `json:"completed"`
	Pending           int `json:"pending"`
	Delayed           int `json:"delayed"`
	Total             int `json:"total"`
	CompletionPercent int `json:"completion_percent"`
}

// Rollup counts milestones per status. Pending is derived by subtraction, so
// an unexpected stored status value shows up as pending instead of breaking
// the totals. An empty set yields all zeros, never a division by zero.
func Rollup(milestones []model.Milestone) Stats {
	s := Stats{Total: len(milestones)}
	for _, m := range milestones {
		switch m.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusDelayed:
			s.Delayed++
		}
	}
	s.Pending = s.Total - s.Completed - s.Delayed
	if s.Total > 0 {
		s.CompletionPercent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// AllCompleted reports whether the client has finished onboarding. A client
// with no milestones is never "completed"; the vacuous-truth reading of
// "every milestone completed" over an empty set is deliberately rejected.
func AllCompleted(milestones []model.Milestone) bool {
	if len(milestones) == 0 {
		return false
	}
	for _, m := range milestones {
		if m.Status != model.StatusCompleted {
			return false
		}
	}
	return true
}

// AnyDelayed reports whether at least one milestone is delayed.
func AnyDelayed(milestones []model.Milestone) bool {
	for _, m := range milestones {
		if m.Status == model.StatusDelayed {
			return true
		}
	}
	return false
}
