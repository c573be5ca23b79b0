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
)

type CreateTournamentInput struct {
	Name       string   `json:"name"`
	Dates      []string `json:"dates"`
	StartTimes []string `json:"start_times,omitempty"`
}

type TournamentService interface {
	// Create refuses while another tournament is still active.
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetActive(ctx context.Context) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	SetBlackout(ctx context.Context, id int, blackout bool) (*models.Tournament, error)
	SetCheckInOpen(ctx context.Context, id int, open bool) (*models.Tournament, error)
}

type tournamentService struct {
	repo     repositories.TournamentRepository
	notifier Notifier
	logger   *slog.Logger
}

func NewTournamentService(repo repositories.TournamentRepository, notifier Notifier, logger *slog.Logger) TournamentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &tournamentService{repo: repo, notifier: notifier, logger: logger}
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	t, err := validateTournamentInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetActive(ctx); err == nil {
		return nil, ErrActiveTournamentExists
	} else if !errors.Is(err, repositories.ErrTournamentNotFound) {
		return nil, translateRepoError("check active tournament", err)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, translateRepoError("create tournament", err)
	}
	return t, nil
}

func validateTournamentInput(input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.Dates) == 0 {
		return nil, ErrTournamentInvalid
	}

	dates := make([]string, 0, len(input.Dates))
	for _, d := range input.Dates {
		parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(d))
		if err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrTournamentInvalid, d)
		}
		dates = append(dates, parsed.Format(time.DateOnly))
	}
	slices.Sort(dates)
	if len(slices.Compact(slices.Clone(dates))) != len(dates) {
		return nil, fmt.Errorf("%w: duplicate dates", ErrTournamentInvalid)
	}

	for _, st := range input.StartTimes {
		if _, err := time.Parse("15:04", st); err != nil {
			return nil, fmt.Errorf("%w: start time %q is not HH:MM", ErrTournamentInvalid, st)
		}
	}

	return &models.Tournament{
		Name:       name,
		Dates:      dates,
		StartTimes: input.StartTimes,
		Status:     models.TournamentStatusUpcoming,
	}, nil
}

func (s *tournamentService) GetActive(ctx context.Context) (*models.Tournament, error) {
	t, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrNoActiveTournament
		}
		return nil, translateRepoError("get active tournament", err)
	}
	return t, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, translateRepoError("get tournament", err)
	}
	return t, nil
}

func (s *tournamentService) SetBlackout(ctx context.Context, id int, blackout bool) (*models.Tournament, error) {
	status := models.TournamentStatusActive
	if blackout {
		status = models.TournamentStatusBlackout
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, translateRepoError("update blackout", err)
	}

	payload := map[string]interface{}{"tournament_id": id, "blackout": blackout}
	if err := s.notifier.Publish(ctx, id, realtime.EventBlackoutStatus, payload); err != nil {
		s.logger.WarnContext(ctx, "failed to broadcast blackout status",
			slog.Int("tournament_id", id), slog.Any("error", err))
	}
	return s.GetByID(ctx, id)
}

func (s *tournamentService) SetCheckInOpen(ctx context.Context, id int, open bool) (*models.Tournament, error) {
	if err := s.repo.SetCheckInOpen(ctx, id, open); err != nil {
		return nil, translateRepoError("update check-in window", err)
	}
	return s.GetByID(ctx, id)
}
