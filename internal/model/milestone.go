package model

import "time"

// Milestone statuses. Every status can transition to every other.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusDelayed   = "delayed"
)

type Milestone struct {
	ID            int        `json:"id"`
	ClientID      int        `json:"client_id"`
	Name          string     `json:"name"`
	Deadline      *time.Time `json:"deadline"`
	Owner         string     `json:"owner"`
	Status        string     `json:"status"` // pending / completed / delayed
	CompletedDate *time.Time `json:"completed_date"`
}
