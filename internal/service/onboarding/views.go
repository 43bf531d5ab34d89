package onboarding

import (
	"time"

	"relotrack/internal/model"
	"relotrack/internal/schedule"
)

// MilestoneView is a milestone decorated with the time-derived fields the
// callers render. Derived fields are never stored; they are recomputed from
// the deadline and the request clock on every read.
type MilestoneView struct {
	model.Milestone
	Overdue  bool   `json:"overdue"`
	DueToday bool   `json:"due_today"`
	DLabel   string `json:"d_label"`
}

// ClientView is a client with its milestones, rollup stats and
// departure-countdown classification.
type ClientView struct {
	model.Client
	CoordinatorName *string         `json:"coordinator_name,omitempty"`
	Milestones      []MilestoneView `json:"milestones"`
	Stats           schedule.Stats  `json:"stats"`
	Urgency         string          `json:"urgency"`
	Countdown       string          `json:"countdown"`
	AllCompleted    bool            `json:"all_completed"`
	AnyDelayed      bool            `json:"any_delayed"`
}

// DashboardStats is the cross-client aggregate for the stats endpoint.
type DashboardStats struct {
	TotalClients   int `json:"total_clients"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Delayed        int `json:"delayed"`
	CompletionRate int `json:"completion_rate"`
}

func newMilestoneView(m model.Milestone, anchor *time.Time, observed time.Time) MilestoneView {
	return MilestoneView{
		Milestone: m,
		Overdue:   schedule.IsOverdue(m, observed),
		DueToday:  schedule.IsDueToday(m, observed),
		DLabel:    schedule.DLabel(m.Deadline, anchor),
	}
}

func newClientView(c model.Client, milestones []model.Milestone, coordinators map[int]model.Profile, observed time.Time) ClientView {
	views := make([]MilestoneView, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, newMilestoneView(m, c.DepartureDate, observed))
	}

	var coordinatorName *string
	if c.CoordinatorID != nil {
		if p, ok := coordinators[*c.CoordinatorID]; ok {
			name := p.FullName
			coordinatorName = &name
		}
	}

	return ClientView{
		Client:          c,
		CoordinatorName: coordinatorName,
		Milestones:      views,
		Stats:           schedule.Rollup(milestones),
		Urgency:         schedule.UrgencyTier(c.DepartureDate, observed),
		Countdown:       schedule.CountdownLabel(c.DepartureDate, observed),
		AllCompleted:    schedule.AllCompleted(milestones),
		AnyDelayed:      schedule.AnyDelayed(milestones),
	}
}
