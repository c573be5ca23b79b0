package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-day/metrics"
	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/pairing"
	"github.com/Dosada05/tournament-day/realtime"
	"github.com/Dosada05/tournament-day/repositories"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const archiveTimeout = 10 * time.Second

type RoundService interface {
	GenerateRound(ctx context.Context, tournamentID, dayIndex, roundNumber int) (*RoundResult, error)
	GetRound(ctx context.Context, tournamentID, dayIndex, roundNumber int) (*RoundView, error)
}

// RoundResult is what a successful generation persisted.
type RoundResult struct {
	TournamentID  int           `json:"tournament_id"`
	DayIndex      int           `json:"day_index"`
	RoundNumber   int           `json:"round_number"`
	Strategy      string        `json:"strategy"`
	TeamsFormed   bool          `json:"teams_formed"`
	RotationReset bool          `json:"rotation_reset"`
	PowerSelected []int         `json:"power_selected"`
	Teams         []models.Team `json:"teams"`
	Games         []models.Game `json:"games"`
	SitOuts       []models.Team `json:"sit_outs"`
	ArchiveURL    string        `json:"archive_url,omitempty"`
}

// RoundView is a stored round read back for display.
type RoundView struct {
	TournamentID int           `json:"tournament_id"`
	DayIndex     int           `json:"day_index"`
	RoundNumber  int           `json:"round_number"`
	Strategy     string        `json:"strategy"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Games        []models.Game `json:"games"`
	SitOuts      []models.Team `json:"sit_outs"`
}

// RoundDeps lists the collaborators of the round service. Notifier, Archiver,
// Metrics, Random and Strategy are optional.
type RoundDeps struct {
	Tx          repositories.Transactor
	Tournaments repositories.TournamentRepository
	Roster      repositories.RosterRepository
	Teams       repositories.TeamRepository
	Games       repositories.GameRepository
	Matchups    repositories.MatchupRepository
	Rounds      repositories.RoundRepository
	Notifier    Notifier
	Archiver    RoundArchiver
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	Random      pairing.Random
	Strategy    pairing.Strategy
}

type roundService struct {
	tx          repositories.Transactor
	tournaments repositories.TournamentRepository
	roster      repositories.RosterRepository
	teams       repositories.TeamRepository
	games       repositories.GameRepository
	matchups    repositories.MatchupRepository
	rounds      repositories.RoundRepository
	notifier    Notifier
	archiver    RoundArchiver
	metrics     *metrics.Metrics
	logger      *slog.Logger
	formation   *pairing.TeamFormationEngine
	pairing     *pairing.PairingEngine
	locks       *dayLocks
}

func NewRoundService(deps RoundDeps) RoundService {
	if deps.Notifier == nil {
		deps.Notifier = noopNotifier{}
	}
	if deps.Archiver == nil {
		deps.Archiver = noopArchiver{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &roundService{
		tx:          deps.Tx,
		tournaments: deps.Tournaments,
		roster:      deps.Roster,
		teams:       deps.Teams,
		games:       deps.Games,
		matchups:    deps.Matchups,
		rounds:      deps.Rounds,
		notifier:    deps.Notifier,
		archiver:    deps.Archiver,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		formation:   pairing.NewTeamFormationEngine(deps.Random),
		pairing:     pairing.NewPairingEngine(deps.Random, deps.Strategy),
		locks:       newDayLocks(),
	}
}

func (s *roundService) GenerateRound(ctx context.Context, tournamentID, dayIndex, roundNumber int) (*RoundResult, error) {
	started := time.Now()
	result, err := s.generate(ctx, tournamentID, dayIndex, roundNumber)
	s.metrics.ObserveRound(roundOutcome(err), time.Since(started))

	logAttrs := []any{
		slog.Int("tournament_id", tournamentID),
		slog.Int("day_index", dayIndex),
		slog.Int("round_number", roundNumber),
	}
	if err != nil {
		var invErr *pairing.InvariantError
		if errors.As(err, &invErr) {
			s.logger.ErrorContext(ctx, "team formation left participants unassigned",
				append(logAttrs, slog.Any("leftover_ids", invErr.Leftover))...)
		} else if roundOutcome(err) == metrics.OutcomeInternalError {
			s.logger.ErrorContext(ctx, "round generation failed", append(logAttrs, slog.Any("error", err))...)
		}
		return nil, err
	}

	s.afterCommit(ctx, result)

	s.logger.InfoContext(ctx, "round generated",
		append(logAttrs,
			slog.Int("games", len(result.Games)),
			slog.Int("sit_outs", len(result.SitOuts)),
			slog.Bool("teams_formed", result.TeamsFormed),
			slog.Bool("rotation_reset", result.RotationReset),
		)...)
	return result, nil
}

func (s *roundService) generate(ctx context.Context, tournamentID, dayIndex, roundNumber int) (*RoundResult, error) {
	if dayIndex < 0 || roundNumber < 1 {
		return nil, fmt.Errorf("%w: day index %d, round %d", ErrInvalidRoundRequest, dayIndex, roundNumber)
	}

	tournament, err := s.tournaments.GetByID(ctx, nil, tournamentID)
	if err != nil {
		return nil, translateRepoError("load tournament", err)
	}
	if !tournament.HasDay(dayIndex) {
		return nil, fmt.Errorf("%w: tournament %d has no day %d", ErrInvalidRoundRequest, tournamentID, dayIndex)
	}

	unlock := s.locks.Lock(tournamentID, dayIndex)
	defer unlock()

	result := &RoundResult{
		TournamentID: tournamentID,
		DayIndex:     dayIndex,
		RoundNumber:  roundNumber,
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournaments.LockDay(ctx, exec, tournamentID, dayIndex); err != nil {
			return err
		}

		var members map[int]models.Participant
		if roundNumber == 1 {
			teams, m, err := s.formDay(ctx, exec, result)
			if err != nil {
				return err
			}
			result.Teams, members = teams, m
		} else {
			teams, err := s.teams.FindTeams(ctx, exec, tournamentID, dayIndex)
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				return fmt.Errorf("%w: tournament %d day %d", ErrTeamsNotFound, tournamentID, dayIndex)
			}
			ids := make([]int, 0, len(teams)*2)
			for _, t := range teams {
				ids = append(ids, t.MemberIDs...)
			}
			participants, err := s.roster.ListByIDs(ctx, exec, ids)
			if err != nil {
				return err
			}
			result.Teams, members = teams, indexParticipants(participants)
		}
		attachMembers(result.Teams, members)

		if err := s.games.DeleteRound(ctx, exec, tournamentID, dayIndex, roundNumber); err != nil {
			return err
		}
		if err := s.matchups.DeleteRound(ctx, exec, tournamentID, dayIndex, roundNumber); err != nil {
			return err
		}
		keys, err := s.matchups.ListDay(ctx, exec, tournamentID, dayIndex, roundNumber)
		if err != nil {
			return err
		}

		round, err := s.pairing.GenerateRound(tournamentID, dayIndex, roundNumber, result.Teams, pairing.NewMatchHistory(keys...))
		if err != nil {
			return err
		}
		if err := s.games.InsertGames(ctx, exec, round.Games); err != nil {
			return err
		}
		played := make([]pairing.MatchupKey, 0, len(round.Games))
		for _, g := range round.Games {
			played = append(played, pairing.KeyFor(*g.TeamA, *g.TeamB))
		}
		if err := s.matchups.Append(ctx, exec, tournamentID, dayIndex, roundNumber, played); err != nil {
			return err
		}
		if err := s.rounds.Save(ctx, exec, &models.Round{
			TournamentID: tournamentID,
			DayIndex:     dayIndex,
			RoundNumber:  roundNumber,
			Strategy:     round.Strategy,
		}); err != nil {
			return err
		}

		result.Strategy = round.Strategy
		result.Games = round.Games
		result.SitOuts = round.SitOuts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// formDay re-forms the day's teams and persists the rotation. Games, matchups and
// round markers of the day are cleared because they reference the replaced teams.
func (s *roundService) formDay(ctx context.Context, exec repositories.SQLExecutor, result *RoundResult) ([]models.Team, map[int]models.Participant, error) {
	checkedIn, err := s.roster.ListCheckedIn(ctx, exec)
	if err != nil {
		return nil, nil, err
	}
	pool, err := s.roster.ListPowerPool(ctx, exec, true)
	if err != nil {
		return nil, nil, err
	}

	formation, err := s.formation.FormTeams(result.TournamentID, result.DayIndex, checkedIn, pairing.NewRotationState(pool))
	if err != nil {
		return nil, nil, err
	}

	if formation.Rotation.Reset {
		if err := s.roster.ResetPowerUsed(ctx, exec); err != nil {
			return nil, nil, err
		}
	}
	for _, id := range formation.Rotation.Selected {
		if err := s.roster.SetPowerUsed(ctx, exec, id, true); err != nil {
			return nil, nil, err
		}
	}

	if err := s.games.DeleteDay(ctx, exec, result.TournamentID, result.DayIndex); err != nil {
		return nil, nil, err
	}
	if err := s.matchups.ClearDay(ctx, exec, result.TournamentID, result.DayIndex); err != nil {
		return nil, nil, err
	}
	if err := s.rounds.ClearDay(ctx, exec, result.TournamentID, result.DayIndex); err != nil {
		return nil, nil, err
	}
	if err := s.teams.ReplaceTeams(ctx, exec, result.TournamentID, result.DayIndex, formation.Teams); err != nil {
		return nil, nil, err
	}
	if err := s.tournaments.SetCurrentDayIndex(ctx, exec, result.TournamentID, result.DayIndex); err != nil {
		return nil, nil, err
	}

	result.TeamsFormed = true
	result.RotationReset = formation.Rotation.Reset
	result.PowerSelected = formation.Rotation.Selected
	return formation.Teams, indexParticipants(checkedIn), nil
}

// afterCommit runs the side effects of a committed round. Failures are logged only.
func (s *roundService) afterCommit(ctx context.Context, result *RoundResult) {
	normal, power := 0, 0
	for _, g := range result.Games {
		if g.IsPowerGame {
			power++
		} else {
			normal++
		}
	}
	s.metrics.RecordGames(normal, power, len(result.SitOuts))
	if result.RotationReset {
		s.metrics.RecordRotationReset()
	}

	if err := s.notifier.Publish(ctx, result.TournamentID, realtime.EventPairingsRevealed, result); err != nil {
		s.logger.WarnContext(ctx, "failed to broadcast pairings",
			slog.Int("tournament_id", result.TournamentID), slog.Any("error", err))
	}

	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()
	url, err := s.archiver.Archive(archiveCtx, &pairing.Round{
		TournamentID: result.TournamentID,
		DayIndex:     result.DayIndex,
		RoundNumber:  result.RoundNumber,
		Strategy:     result.Strategy,
		Games:        result.Games,
		SitOuts:      result.SitOuts,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to archive round",
			slog.Int("tournament_id", result.TournamentID),
			slog.Int("round_number", result.RoundNumber),
			slog.Any("error", err))
		return
	}
	result.ArchiveURL = url
}

func (s *roundService) GetRound(ctx context.Context, tournamentID, dayIndex, roundNumber int) (*RoundView, error) {
	if dayIndex < 0 || roundNumber < 1 {
		return nil, fmt.Errorf("%w: day index %d, round %d", ErrInvalidRoundRequest, dayIndex, roundNumber)
	}

	var (
		marker       *models.Round
		teams        []models.Team
		games        []models.Game
		participants []models.Participant
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		marker, err = s.rounds.Get(gCtx, nil, tournamentID, dayIndex, roundNumber)
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.teams.FindTeams(gCtx, nil, tournamentID, dayIndex)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.games.FindGames(gCtx, nil, tournamentID, dayIndex, roundNumber)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.roster.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load round %d: %w", roundNumber, err)
	}

	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: tournament %d day %d", ErrTeamsNotFound, tournamentID, dayIndex)
	}
	if marker == nil {
		return nil, fmt.Errorf("%w: tournament %d day %d round %d", ErrRoundNotFound, tournamentID, dayIndex, roundNumber)
	}

	attachMembers(teams, indexParticipants(participants))
	byID := make(map[uuid.UUID]*models.Team, len(teams))
	for i := range teams {
		byID[teams[i].ID] = &teams[i]
	}

	playing := make(map[uuid.UUID]struct{}, len(games)*2)
	for i := range games {
		if t, ok := byID[games[i].TeamAID]; ok {
			games[i].TeamA = t
		}
		if t, ok := byID[games[i].TeamBID]; ok {
			games[i].TeamB = t
		}
		playing[games[i].TeamAID] = struct{}{}
		playing[games[i].TeamBID] = struct{}{}
	}

	sitOuts := make([]models.Team, 0)
	for _, t := range teams {
		if _, ok := playing[t.ID]; !ok {
			sitOuts = append(sitOuts, t)
		}
	}

	return &RoundView{
		TournamentID: tournamentID,
		DayIndex:     dayIndex,
		RoundNumber:  roundNumber,
		Strategy:     marker.Strategy,
		GeneratedAt:  marker.GeneratedAt,
		Games:        games,
		SitOuts:      sitOuts,
	}, nil
}

func indexParticipants(ps []models.Participant) map[int]models.Participant {
	out := make(map[int]models.Participant, len(ps))
	for _, p := range ps {
		out[p.ID] = p
	}
	return out
}

func attachMembers(teams []models.Team, members map[int]models.Participant) {
	for i := range teams {
		teams[i].Members = teams[i].Members[:0]
		for _, id := range teams[i].MemberIDs {
			if p, ok := members[id]; ok {
				teams[i].Members = append(teams[i].Members, p)
			}
		}
	}
}

var rejectedRoundErrors = []error{
	ErrInvalidRoundRequest,
	ErrTournamentNotFound,
	ErrTeamsNotFound,
	ErrInsufficientParticipants,
	ErrInvalidDistribution,
	ErrInsufficientPowerParticipants,
	ErrTooFewTeams,
}

func roundOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if errors.Is(err, ErrAlgorithmInvariantViolation) {
		return metrics.OutcomeInvariant
	}
	for _, target := range rejectedRoundErrors {
		if errors.Is(err, target) {
			return metrics.OutcomeRejected
		}
	}
	return metrics.OutcomeInternalError
}
