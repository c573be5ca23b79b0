package models

import "time"

// TournamentStatus mirrors the tournament_status enum in the database.
type TournamentStatus string

const (
	TournamentStatusUpcoming  TournamentStatus = "upcoming"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusBlackout  TournamentStatus = "blackout"
	TournamentStatusCompleted TournamentStatus = "completed"
)

// Tournament is a multi-day event. Dates are ISO calendar dates (YYYY-MM-DD),
// one per day index.
type Tournament struct {
	ID              int              `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Dates           []string         `json:"dates" db:"dates"`
	StartTimes      []string         `json:"start_times,omitempty" db:"start_times"`
	Status          TournamentStatus `json:"status" db:"status"`
	CurrentDayIndex int              `json:"current_day_index" db:"current_day_index"`
	CheckInOpen     bool             `json:"check_in_open" db:"check_in_open"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

// HasDay reports whether dayIndex addresses one of the tournament's dates.
func (t Tournament) HasDay(dayIndex int) bool {
	return dayIndex >= 0 && dayIndex < len(t.Dates)
}

// DayIndexOf returns the index of the ISO date, or -1.
func (t Tournament) DayIndexOf(date string) int {
	for i, d := range t.Dates {
		if d == date {
			return i
		}
	}
	return -1
}
