package models

import "time"

// Round marks a generated round. It exists even when every team sat out.
type Round struct {
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	DayIndex     int       `json:"day_index" db:"day_index"`
	RoundNumber  int       `json:"round_number" db:"round_number"`
	Strategy     string    `json:"strategy" db:"strategy"`
	GeneratedAt  time.Time `json:"generated_at" db:"generated_at"`
}
