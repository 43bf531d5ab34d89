package model

import "time"

// Client is a relocation client. DepartureDate is the anchor ("D-Day") every
// milestone deadline is offset from; without it no schedule can be generated.
type Client struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone"`
	CoordinatorID *int       `json:"coordinator_id"`
	ArrivalDate   *time.Time `json:"arrival_date"`
	DepartureDate *time.Time `json:"departure_date"`
	CreatedAt     time.Time  `json:"created_at"`
}
