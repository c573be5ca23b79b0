package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-day/repositories"
)

// translateRepoError maps repository sentinels onto service sentinels and wraps
// anything else with the operation name.
func translateRepoError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrParticipantNotFound):
		return ErrParticipantNotFound
	case errors.Is(err, repositories.ErrRoundNotFound):
		return ErrRoundNotFound
	case errors.Is(err, repositories.ErrGameNotFound):
		return ErrGameNotFound
	case errors.Is(err, repositories.ErrGameFinalized):
		return ErrGameAlreadyFinalized
	case errors.Is(err, repositories.ErrGameStatusChange):
		return ErrGameNotUpcoming
	case errors.Is(err, repositories.ErrParticipantConflict):
		return ErrParticipantConflict
	case errors.Is(err, repositories.ErrTournamentConflict):
		return ErrTournamentConflict
	case errors.Is(err, repositories.ErrTeamConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
