package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/tournament-day/metrics"
	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/repositories"
)

const maxParticipantNameLength = 100

type RosterService interface {
	// RegisterProxy adds a walk-up participant with no account behind them.
	RegisterProxy(ctx context.Context, name string, isPower bool) (*models.Participant, error)
	// CheckIn sets presence. Checking in needs an open window; checking out is always allowed.
	CheckIn(ctx context.Context, participantID int, checkedIn bool) (*models.Participant, error)
	SetPowerFlag(ctx context.Context, participantID int, isPower bool) (*models.Participant, error)
	List(ctx context.Context) ([]models.Participant, error)
	ResetDailyStatus(ctx context.Context) (int64, error)
	CheckInOpen(ctx context.Context) (bool, error)
}

// CheckInPolicy decides when players may check in on a tournament day.
type CheckInPolicy struct {
	Location *time.Location
	OpenHour int
}

// Open reports whether check-in is open for t at now: either forced open on the
// tournament, or now falls on one of its dates at or after OpenHour local time.
func (p CheckInPolicy) Open(t *models.Tournament, now time.Time) bool {
	if t == nil {
		return false
	}
	if t.CheckInOpen {
		return true
	}
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return t.DayIndexOf(local.Format(time.DateOnly)) >= 0 && local.Hour() >= p.OpenHour
}

type rosterService struct {
	roster      repositories.RosterRepository
	tournaments repositories.TournamentRepository
	policy      CheckInPolicy
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewRosterService(
	roster repositories.RosterRepository,
	tournaments repositories.TournamentRepository,
	policy CheckInPolicy,
	m *metrics.Metrics,
) RosterService {
	return &rosterService{
		roster:      roster,
		tournaments: tournaments,
		policy:      policy,
		metrics:     m,
		now:         time.Now,
	}
}

func (s *rosterService) RegisterProxy(ctx context.Context, name string, isPower bool) (*models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxParticipantNameLength {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", ErrValidationFailed, maxParticipantNameLength)
	}

	p := &models.Participant{Name: name, IsProxy: true, IsPower: isPower}
	if err := s.roster.Create(ctx, p); err != nil {
		return nil, translateRepoError("register proxy participant", err)
	}
	return p, nil
}

func (s *rosterService) CheckIn(ctx context.Context, participantID int, checkedIn bool) (*models.Participant, error) {
	if checkedIn {
		open, err := s.CheckInOpen(ctx)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, ErrCheckInClosed
		}
	}

	if err := s.roster.SetCheckedIn(ctx, participantID, checkedIn, s.now().UTC()); err != nil {
		return nil, translateRepoError("update check-in", err)
	}
	if checkedIn {
		s.metrics.RecordCheckIn()
	}

	p, err := s.roster.GetByID(ctx, participantID)
	if err != nil {
		return nil, translateRepoError("reload participant", err)
	}
	return p, nil
}

func (s *rosterService) CheckInOpen(ctx context.Context) (bool, error) {
	t, err := s.tournaments.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return false, nil
		}
		return false, translateRepoError("load active tournament", err)
	}
	return s.policy.Open(t, s.now()), nil
}

func (s *rosterService) SetPowerFlag(ctx context.Context, participantID int, isPower bool) (*models.Participant, error) {
	if err := s.roster.SetPower(ctx, participantID, isPower); err != nil {
		return nil, translateRepoError("update power flag", err)
	}
	p, err := s.roster.GetByID(ctx, participantID)
	if err != nil {
		return nil, translateRepoError("reload participant", err)
	}
	return p, nil
}

func (s *rosterService) List(ctx context.Context) ([]models.Participant, error) {
	ps, err := s.roster.List(ctx)
	if err != nil {
		return nil, translateRepoError("list participants", err)
	}
	return ps, nil
}

func (s *rosterService) ResetDailyStatus(ctx context.Context) (int64, error) {
	n, err := s.roster.ResetDailyStatus(ctx)
	if err != nil {
		return 0, translateRepoError("reset daily status", err)
	}
	s.metrics.RecordDailyReset()
	return n, nil
}
