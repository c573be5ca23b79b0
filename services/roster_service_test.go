package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/tournament-day/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInPolicyOpen(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	policy := CheckInPolicy{Location: chicago, OpenHour: 17}
	tournament := &models.Tournament{Dates: []string{"2026-07-10", "2026-07-11"}}

	tests := []struct {
		name string
		t    *models.Tournament
		now  time.Time
		want bool
	}{
		{name: "tournament day after hour", t: tournament, now: time.Date(2026, 7, 10, 17, 5, 0, 0, chicago), want: true},
		{name: "tournament day before hour", t: tournament, now: time.Date(2026, 7, 10, 16, 59, 0, 0, chicago), want: false},
		{name: "utc already next day", t: tournament, now: time.Date(2026, 7, 12, 1, 0, 0, 0, time.UTC), want: true},
		{name: "not a tournament day", t: tournament, now: time.Date(2026, 7, 12, 18, 0, 0, 0, chicago), want: false},
		{name: "forced open", t: &models.Tournament{CheckInOpen: true}, now: time.Date(2026, 1, 1, 9, 0, 0, 0, chicago), want: true},
		{name: "no tournament", t: nil, now: time.Date(2026, 7, 10, 18, 0, 0, 0, chicago), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Open(tt.t, tt.now))
		})
	}
}

func newTestRosterService(store *memStore, now time.Time) *rosterService {
	svc := NewRosterService(memRoster{store}, memTournaments{store}, CheckInPolicy{Location: time.UTC, OpenHour: 17}, nil).(*rosterService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckIn(t *testing.T) {
	store := newMemStore()
	store.addTournament(models.Tournament{ID: 1, Name: "Cup", Dates: []string{"2026-07-10"}, Status: models.TournamentStatusActive})
	p := store.addParticipant(models.Participant{Name: "Ada"})
	ctx := context.Background()

	closed := newTestRosterService(store, time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC))
	_, err := closed.CheckIn(ctx, p.ID, true)
	assert.ErrorIs(t, err, ErrCheckInClosed)

	open := newTestRosterService(store, time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC))
	got, err := open.CheckIn(ctx, p.ID, true)
	require.NoError(t, err)
	assert.True(t, got.CheckedIn)
	require.NotNil(t, got.CheckedInAt)

	got, err = closed.CheckIn(ctx, p.ID, false)
	require.NoError(t, err, "checking out ignores the window")
	assert.False(t, got.CheckedIn)
	assert.Nil(t, got.CheckedInAt)

	_, err = open.CheckIn(ctx, 404, true)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestCheckInWithoutActiveTournament(t *testing.T) {
	store := newMemStore()
	p := store.addParticipant(models.Participant{Name: "Ada"})
	svc := newTestRosterService(store, time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), p.ID, true)
	assert.ErrorIs(t, err, ErrCheckInClosed)
}

func TestRegisterProxy(t *testing.T) {
	store := newMemStore()
	svc := newTestRosterService(store, time.Now())

	p, err := svc.RegisterProxy(context.Background(), "  Walk Up  ", true)
	require.NoError(t, err)
	assert.Equal(t, "Walk Up", p.Name)
	assert.True(t, p.IsProxy)
	assert.True(t, p.IsPower)
	assert.NotZero(t, p.ID)

	_, err = svc.RegisterProxy(context.Background(), "   ", false)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSetPowerFlagClearsRotation(t *testing.T) {
	store := newMemStore()
	p := store.addParticipant(models.Participant{Name: "Ada", IsPower: true, PowerUsed: true})
	svc := newTestRosterService(store, time.Now())

	got, err := svc.SetPowerFlag(context.Background(), p.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsPower)
	assert.False(t, got.PowerUsed)
}

func TestResetDailyStatus(t *testing.T) {
	store := newMemStore()
	store.addParticipant(models.Participant{Name: "Ada", CheckedIn: true})
	store.addParticipant(models.Participant{Name: "Ben", CheckedIn: true})
	store.addParticipant(models.Participant{Name: "Cy"})
	svc := newTestRosterService(store, time.Now())

	n, err := svc.ResetDailyStatus(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, p := range list {
		assert.False(t, p.CheckedIn, p.Name)
	}
}
