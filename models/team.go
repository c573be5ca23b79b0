package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Team is a per-day grouping of participants: one member for a power team, two otherwise.
type Team struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	DayIndex     int       `json:"day_index" db:"day_index"`
	MemberIDs    []int     `json:"member_ids" db:"member_ids"`
	IsPowerTeam  bool      `json:"is_power_team" db:"is_power_team"`
	Ordinal      int       `json:"ordinal" db:"ordinal"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Members []Participant `json:"members,omitempty" db:"-"`
}

// SortedMemberIDs returns a sorted copy of MemberIDs.
func (t Team) SortedMemberIDs() []int {
	ids := slices.Clone(t.MemberIDs)
	slices.Sort(ids)
	return ids
}

// HasMember reports whether participantID plays on this team.
func (t Team) HasMember(participantID int) bool {
	return slices.Contains(t.MemberIDs, participantID)
}
