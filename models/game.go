package models

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameStatusUpcoming  GameStatus = "upcoming"
	GameStatusActive    GameStatus = "active"
	GameStatusFinalized GameStatus = "finalized"
)

func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusUpcoming, GameStatusActive, GameStatusFinalized:
		return true
	}
	return false
}

// Game is one matchup of a round. It is created upcoming by round generation;
// status and scores are advanced afterwards by the game endpoints.
type Game struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TournamentID int        `json:"tournament_id" db:"tournament_id"`
	DayIndex     int        `json:"day_index" db:"day_index"`
	RoundNumber  int        `json:"round_number" db:"round_number"`
	TeamAID      uuid.UUID  `json:"team_a_id" db:"team_a_id"`
	TeamBID      uuid.UUID  `json:"team_b_id" db:"team_b_id"`
	IsPowerGame  bool       `json:"is_power_game" db:"is_power_game"`
	Status       GameStatus `json:"status" db:"status"`
	ScoreA       int        `json:"score_a" db:"score_a"`
	ScoreB       int        `json:"score_b" db:"score_b"`
	StartTime    *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" db:"end_time"`
	SubmittedBy  *string    `json:"submitted_by,omitempty" db:"submitted_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`

	// Populated by the service layer, not stored on the games row.
	TeamA *Team `json:"team_a,omitempty" db:"-"`
	TeamB *Team `json:"team_b,omitempty" db:"-"`
}
