package models

// Standing is a participant's aggregate over the finalized games of a tournament.
type Standing struct {
	ParticipantID int    `json:"user_id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	GamesPlayed   int    `json:"games_played"`
	TotalPoints   int    `json:"total_points"`
}
