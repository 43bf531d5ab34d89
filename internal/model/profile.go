package model

import "time"

type Profile struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"` // admin / task_owner
	CreatedAt    time.Time `json:"created_at"`
}
