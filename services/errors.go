package services

import (
	"errors"

	"github.com/Dosada05/tournament-day/pairing"
)

var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrAuthDisabled       = errors.New("admin login is not configured")

	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrGameNotFound        = errors.New("game not found")

	ErrInvalidRoundRequest    = errors.New("invalid round request")
	ErrRoundNotFound          = errors.New("round has not been generated")
	ErrInvalidScore           = errors.New("scores must be non-negative")
	ErrInvalidGameStatus      = errors.New("invalid game status")
	ErrGameAlreadyFinalized   = errors.New("game already finalized")
	ErrGameNotUpcoming        = errors.New("game can only be started from upcoming")
	ErrCheckInClosed          = errors.New("check-in is not open")
	ErrTournamentInvalid      = errors.New("tournament needs a name and at least one valid date")
	ErrParticipantConflict    = errors.New("participant email or phone already registered")
	ErrTournamentConflict     = errors.New("tournament name already exists")
	ErrActiveTournamentExists = errors.New("an active tournament already exists")
	ErrNoActiveTournament     = errors.New("no active tournament")

	// Re-exported so handlers map engine outcomes without importing pairing.
	ErrTeamsNotFound                 = pairing.ErrTeamsNotFound
	ErrInsufficientParticipants      = pairing.ErrInsufficientParticipants
	ErrInvalidDistribution           = pairing.ErrInvalidDistribution
	ErrInsufficientPowerParticipants = pairing.ErrInsufficientPowerParticipants
	ErrTooFewTeams                   = pairing.ErrTooFewTeams
	ErrAlgorithmInvariantViolation   = pairing.ErrAlgorithmInvariantViolation
)
