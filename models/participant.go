package models

import "time"

// Participant is a player on the tournament roster.
// IsPower is permanent; PowerUsed is the rotation flag flipped by round generation.
type Participant struct {
	ID          int        `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Email       *string    `json:"email,omitempty" db:"email"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	IsProxy     bool       `json:"is_proxy" db:"is_proxy"`
	CheckedIn   bool       `json:"checked_in" db:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty" db:"checked_in_at"`
	IsPower     bool       `json:"is_power" db:"is_power"`
	PowerUsed   bool       `json:"power_used" db:"power_used"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
