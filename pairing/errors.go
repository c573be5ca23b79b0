package pairing

import (
	"errors"
	"fmt"
)

// Expected, caller-recoverable outcomes of formation and pairing.
var (
	ErrInsufficientParticipants      = errors.New("not enough checked-in participants (minimum 3)")
	ErrInvalidDistribution           = errors.New("participant count cannot be split into power and normal teams")
	ErrInsufficientPowerParticipants = errors.New("not enough checked-in power participants for the required power teams")
	ErrTeamsNotFound                 = errors.New("teams have not been formed for this day")
	ErrTooFewTeams                   = errors.New("at least two teams are required to pair a round")

	// ErrAlgorithmInvariantViolation signals a logic defect, never a user error.
	ErrAlgorithmInvariantViolation = errors.New("team formation invariant violated")
)

// InvariantError carries the participants left unassigned after formation.
type InvariantError struct {
	DayIndex int
	Leftover []int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: day %d left %d participant(s) unassigned: %v",
		ErrAlgorithmInvariantViolation, e.DayIndex, len(e.Leftover), e.Leftover)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrAlgorithmInvariantViolation
}
