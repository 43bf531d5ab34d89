package mq

import "time"

// Routing keys on the events exchange.
const (
	RoutingKeyMilestoneStatusChanged = "milestone.status_changed"
	RoutingKeyDailySummary           = "summary.daily"
)

// MilestoneStatusChangedPayload is published after every successful status
// transition. Consumers fan it out to external notification channels;
// delivery is best-effort and never affects the transition itself.
type MilestoneStatusChangedPayload struct {
	ClientID    int       `json:"client_id"`
	MilestoneID int       `json:"milestone_id"`
	Name        string    `json:"name"`
	NewStatus   string    `json:"new_status"`
	OccurredAt  time.Time `json:"occurred_at"`
	TraceID     string    `json:"trace_id,omitempty"`
}

// SummaryMilestone is one line item in a daily summary.
type SummaryMilestone struct {
	MilestoneID int     `json:"milestone_id"`
	ClientID    int     `json:"client_id"`
	ClientName  string  `json:"client_name"`
	ClientPhone *string `json:"client_phone,omitempty"`
	Name        string  `json:"name"`
	Owner       string  `json:"owner"`
	Deadline    string  `json:"deadline,omitempty"` // YYYY-MM-DD
}

// DailySummaryPayload is the digest of milestones due today and currently
// delayed, published once per day by the runner.
type DailySummaryPayload struct {
	Date               string             `json:"date"` // YYYY-MM-DD
	DueToday           int                `json:"due_today"`
	Delayed            int                `json:"delayed"`
	MilestonesDue      []SummaryMilestone `json:"milestones_due"`
	MilestonesDelayed  []SummaryMilestone `json:"milestones_delayed"`
}
