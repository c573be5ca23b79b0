package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/realtime"
	"github.com/Dosada05/tournament-day/repositories"
	"github.com/google/uuid"
)

const DefaultGameDuration = 20 * time.Minute

type GameService interface {
	StartGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	// StartAllUpcoming activates every upcoming game and returns the count and the shared end time.
	StartAllUpcoming(ctx context.Context, tournamentID int) (int, time.Time, error)
	SubmitScore(ctx context.Context, gameID uuid.UUID, scoreA, scoreB int, submittedBy string) (*models.Game, error)
	UpdateGame(ctx context.Context, gameID uuid.UUID, input UpdateGameInput) (*models.Game, error)
	ListGames(ctx context.Context, tournamentID int, status *models.GameStatus) ([]models.Game, error)
	// CurrentGame returns the game the participant is playing or is about to play,
	// with member names attached. A nil game means nothing is scheduled for them.
	CurrentGame(ctx context.Context, tournamentID, participantID int) (*models.Game, error)
}

// UpdateGameInput is an admin correction. Nil fields keep their stored value.
// Scores without a status finalize the game.
type UpdateGameInput struct {
	Status *models.GameStatus `json:"status,omitempty"`
	ScoreA *int               `json:"score_a,omitempty"`
	ScoreB *int               `json:"score_b,omitempty"`
}

type gameService struct {
	games     repositories.GameRepository
	roster    repositories.RosterRepository
	standings StandingsService
	notifier  Notifier
	logger    *slog.Logger
	duration  time.Duration
	now       func() time.Time
}

func NewGameService(
	games repositories.GameRepository,
	roster repositories.RosterRepository,
	standings StandingsService,
	notifier Notifier,
	logger *slog.Logger,
	duration time.Duration,
) GameService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if duration <= 0 {
		duration = DefaultGameDuration
	}
	return &gameService{
		games:     games,
		roster:    roster,
		standings: standings,
		notifier:  notifier,
		logger:    logger,
		duration:  duration,
		now:       time.Now,
	}
}

func (s *gameService) StartGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, translateRepoError("load game", err)
	}
	if game.Status != models.GameStatusUpcoming {
		return nil, fmt.Errorf("%w: game %s is %s", ErrGameNotUpcoming, gameID, game.Status)
	}

	start := s.now().UTC()
	end := start.Add(s.duration)
	if err := s.games.UpdateStatus(ctx, gameID, models.GameStatusUpcoming, models.GameStatusActive, &start, &end); err != nil {
		return nil, translateRepoError("start game", err)
	}

	game.Status = models.GameStatusActive
	game.StartTime, game.EndTime = &start, &end
	s.publishStandings(ctx, game.TournamentID)
	return game, nil
}

func (s *gameService) StartAllUpcoming(ctx context.Context, tournamentID int) (int, time.Time, error) {
	start := s.now().UTC()
	end := start.Add(s.duration)
	n, err := s.games.StartUpcoming(ctx, tournamentID, start, end)
	if err != nil {
		return 0, time.Time{}, translateRepoError("start upcoming games", err)
	}

	if n > 0 {
		payload := map[string]interface{}{"started": n, "start_time": start, "end_time": end}
		if err := s.notifier.Publish(ctx, tournamentID, realtime.EventGamesStarted, payload); err != nil {
			s.logger.WarnContext(ctx, "failed to broadcast started games",
				slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		}
		s.publishStandings(ctx, tournamentID)
	}
	return int(n), end, nil
}

func (s *gameService) SubmitScore(ctx context.Context, gameID uuid.UUID, scoreA, scoreB int, submittedBy string) (*models.Game, error) {
	if scoreA < 0 || scoreB < 0 {
		return nil, ErrInvalidScore
	}
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, translateRepoError("load game", err)
	}
	if game.Status == models.GameStatusFinalized {
		return nil, ErrGameAlreadyFinalized
	}

	upd := repositories.GameScoreUpdate{
		ScoreA:          scoreA,
		ScoreB:          scoreB,
		Status:          models.GameStatusFinalized,
		RejectFinalized: true,
	}
	if by := strings.TrimSpace(submittedBy); by != "" {
		upd.SubmittedBy = &by
	}
	if game.EndTime == nil {
		now := s.now().UTC()
		upd.EndTime = &now
	}
	if err := s.games.UpdateScore(ctx, gameID, upd); err != nil {
		return nil, translateRepoError("submit score", err)
	}

	game.ScoreA, game.ScoreB = scoreA, scoreB
	game.Status = models.GameStatusFinalized
	if upd.SubmittedBy != nil {
		game.SubmittedBy = upd.SubmittedBy
	}
	if upd.EndTime != nil {
		game.EndTime = upd.EndTime
	}
	s.publishStandings(ctx, game.TournamentID)
	return game, nil
}

func (s *gameService) UpdateGame(ctx context.Context, gameID uuid.UUID, input UpdateGameInput) (*models.Game, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGameStatus, *input.Status)
	}
	if (input.ScoreA != nil && *input.ScoreA < 0) || (input.ScoreB != nil && *input.ScoreB < 0) {
		return nil, ErrInvalidScore
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, translateRepoError("load game", err)
	}

	scoresGiven := input.ScoreA != nil || input.ScoreB != nil
	status := game.Status
	if input.Status != nil {
		status = *input.Status
	} else if scoresGiven {
		status = models.GameStatusFinalized
	}

	if scoresGiven {
		if input.ScoreA != nil {
			game.ScoreA = *input.ScoreA
		}
		if input.ScoreB != nil {
			game.ScoreB = *input.ScoreB
		}
		err = s.games.UpdateScore(ctx, gameID, repositories.GameScoreUpdate{
			ScoreA: game.ScoreA,
			ScoreB: game.ScoreB,
			Status: status,
		})
	} else {
		var start, end *time.Time
		if status == models.GameStatusActive && game.StartTime == nil {
			st := s.now().UTC()
			en := st.Add(s.duration)
			start, end = &st, &en
			game.StartTime, game.EndTime = start, end
		}
		err = s.games.UpdateStatus(ctx, gameID, "", status, start, end)
	}
	if err != nil {
		return nil, translateRepoError("update game", err)
	}

	game.Status = status
	s.publishStandings(ctx, game.TournamentID)
	return game, nil
}

func (s *gameService) ListGames(ctx context.Context, tournamentID int, status *models.GameStatus) ([]models.Game, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGameStatus, *status)
	}
	games, err := s.games.ListByTournament(ctx, tournamentID, status)
	if err != nil {
		return nil, translateRepoError("list games", err)
	}
	return games, nil
}

func (s *gameService) CurrentGame(ctx context.Context, tournamentID, participantID int) (*models.Game, error) {
	if _, err := s.roster.GetByID(ctx, participantID); err != nil {
		return nil, translateRepoError("load participant", err)
	}

	game, err := s.games.FindCurrentForParticipant(ctx, tournamentID, participantID)
	if errors.Is(err, repositories.ErrGameNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateRepoError("find current game", err)
	}

	teams := []models.Team{*game.TeamA, *game.TeamB}
	members, err := s.roster.ListByIDs(ctx, nil, slices.Concat(teams[0].MemberIDs, teams[1].MemberIDs))
	if err != nil {
		return nil, translateRepoError("load game members", err)
	}
	attachMembers(teams, indexParticipants(members))
	game.TeamA, game.TeamB = &teams[0], &teams[1]
	return game, nil
}

func (s *gameService) publishStandings(ctx context.Context, tournamentID int) {
	if s.standings == nil {
		return
	}
	standings, err := s.standings.Standings(ctx, tournamentID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to compute standings for broadcast",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}
	if err := s.notifier.Publish(ctx, tournamentID, realtime.EventStandingsUpdated, standings); err != nil {
		s.logger.WarnContext(ctx, "failed to broadcast standings",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
	}
}
