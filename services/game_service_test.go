package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/realtime"
	"github.com/Dosada05/tournament-day/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 7, 10, 18, 30, 0, 0, time.UTC)

// seedDay stores teams {1,2} {3,4} {5} {6,7} on day 0 with two upcoming games.
func seedDay(t *testing.T, store *memStore) (ab, cd models.Game) {
	t.Helper()
	names := []string{"Ada", "Ben", "Cy", "Dee", "Eve", "Fay", "Gus"}
	for i, name := range names {
		store.addParticipant(models.Participant{ID: i + 1, Name: name, CheckedIn: true})
	}
	store.addTournament(models.Tournament{ID: testTournamentID, Name: "Cup", Dates: []string{"2026-07-10"}, Status: models.TournamentStatusActive})

	teams := []models.Team{
		{ID: uuid.New(), TournamentID: testTournamentID, MemberIDs: []int{1, 2}, Ordinal: 2},
		{ID: uuid.New(), TournamentID: testTournamentID, MemberIDs: []int{3, 4}, Ordinal: 3},
		{ID: uuid.New(), TournamentID: testTournamentID, MemberIDs: []int{5}, IsPowerTeam: true, Ordinal: 1},
		{ID: uuid.New(), TournamentID: testTournamentID, MemberIDs: []int{6, 7}, Ordinal: 4},
	}
	require.NoError(t, memTeams{store}.ReplaceTeams(context.Background(), nil, testTournamentID, 0, teams))

	ab = models.Game{ID: uuid.New(), TournamentID: testTournamentID, RoundNumber: 1, TeamAID: teams[0].ID, TeamBID: teams[1].ID, Status: models.GameStatusUpcoming}
	cd = models.Game{ID: uuid.New(), TournamentID: testTournamentID, RoundNumber: 1, TeamAID: teams[2].ID, TeamBID: teams[3].ID, IsPowerGame: true, Status: models.GameStatusUpcoming}
	require.NoError(t, memGames{store}.InsertGames(context.Background(), nil, []models.Game{ab, cd}))
	return ab, cd
}

func newTestGameService(store *memStore, notifier Notifier) *gameService {
	standings := NewStandingsService(memGames{store}, memRoster{store})
	svc := NewGameService(memGames{store}, memRoster{store}, standings, notifier, discardLogger(), 0).(*gameService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestStartGame(t *testing.T) {
	store := newMemStore()
	ab, _ := seedDay(t, store)
	svc := newTestGameService(store, nil)

	game, err := svc.StartGame(context.Background(), ab.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusActive, game.Status)
	require.NotNil(t, game.StartTime)
	require.NotNil(t, game.EndTime)
	assert.Equal(t, fixedNow, *game.StartTime)
	assert.Equal(t, fixedNow.Add(DefaultGameDuration), *game.EndTime)

	_, err = svc.StartGame(context.Background(), ab.ID)
	assert.ErrorIs(t, err, ErrGameNotUpcoming)

	_, err = svc.StartGame(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestStartAllUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	store := newMemStore()
	seedDay(t, store)
	svc := newTestGameService(store, notifier)

	notifier.EXPECT().Publish(gomock.Any(), testTournamentID, realtime.EventGamesStarted, gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().
		Publish(gomock.Any(), testTournamentID, realtime.EventStandingsUpdated, gomock.AssignableToTypeOf([]models.Standing{})).
		Return(nil).
		Times(1)

	n, end, err := svc.StartAllUpcoming(context.Background(), testTournamentID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, fixedNow.Add(20*time.Minute), end)

	n, _, err = svc.StartAllUpcoming(context.Background(), testTournamentID)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing left to start and no broadcast")
}

func TestCurrentGame(t *testing.T) {
	store := newMemStore()
	ab, cd := seedDay(t, store)
	store.addParticipant(models.Participant{ID: 8, Name: "Hal", CheckedIn: true})
	svc := newTestGameService(store, nil)
	ctx := context.Background()

	game, err := svc.CurrentGame(ctx, testTournamentID, 3)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, ab.ID, game.ID)
	require.NotNil(t, game.TeamA)
	require.NotNil(t, game.TeamB)
	assert.Equal(t, []string{"Ada", "Ben"}, memberNames(game.TeamA))
	assert.Equal(t, []string{"Cy", "Dee"}, memberNames(game.TeamB))

	_, err = svc.StartGame(ctx, cd.ID)
	require.NoError(t, err)
	game, err = svc.CurrentGame(ctx, testTournamentID, 5)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, cd.ID, game.ID)
	assert.Equal(t, models.GameStatusActive, game.Status)

	_, err = svc.SubmitScore(ctx, ab.ID, 21, 18, "ada")
	require.NoError(t, err)
	game, err = svc.CurrentGame(ctx, testTournamentID, 1)
	require.NoError(t, err)
	assert.Nil(t, game, "finalized games are not current")

	game, err = svc.CurrentGame(ctx, testTournamentID, 8)
	require.NoError(t, err)
	assert.Nil(t, game, "checked in but not on any team")

	_, err = svc.CurrentGame(ctx, testTournamentID, 99)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func memberNames(team *models.Team) []string {
	names := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		names = append(names, m.Name)
	}
	return names
}

func TestSubmitScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	store := newMemStore()
	ab, _ := seedDay(t, store)
	svc := newTestGameService(store, notifier)

	notifier.EXPECT().
		Publish(gomock.Any(), testTournamentID, realtime.EventStandingsUpdated, gomock.AssignableToTypeOf([]models.Standing{})).
		Return(nil).
		Times(1)

	game, err := svc.SubmitScore(context.Background(), ab.ID, 21, 15, " ada ")
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusFinalized, game.Status)
	assert.Equal(t, 21, game.ScoreA)
	require.NotNil(t, game.SubmittedBy)
	assert.Equal(t, "ada", *game.SubmittedBy)
	require.NotNil(t, game.EndTime)

	_, err = svc.SubmitScore(context.Background(), ab.ID, 1, 2, "ben")
	assert.ErrorIs(t, err, ErrGameAlreadyFinalized)

	_, err = svc.SubmitScore(context.Background(), ab.ID, -1, 2, "ben")
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestUpdateGame(t *testing.T) {
	store := newMemStore()
	ab, cd := seedDay(t, store)
	svc := newTestGameService(store, nil)
	ctx := context.Background()

	scoreA, scoreB := 11, 7
	game, err := svc.UpdateGame(ctx, ab.ID, UpdateGameInput{ScoreA: &scoreA, ScoreB: &scoreB})
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusFinalized, game.Status, "scores without status finalize")

	active := models.GameStatusActive
	game, err = svc.UpdateGame(ctx, cd.ID, UpdateGameInput{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusActive, game.Status)
	assert.NotNil(t, game.StartTime)

	upcoming := models.GameStatusUpcoming
	game, err = svc.UpdateGame(ctx, ab.ID, UpdateGameInput{Status: &upcoming, ScoreA: &scoreB})
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusUpcoming, game.Status, "explicit status wins")
	assert.Equal(t, 7, game.ScoreA)
	assert.Equal(t, 7, game.ScoreB)

	bogus := models.GameStatus("paused")
	_, err = svc.UpdateGame(ctx, ab.ID, UpdateGameInput{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidGameStatus)

	negative := -3
	_, err = svc.UpdateGame(ctx, ab.ID, UpdateGameInput{ScoreB: &negative})
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestListGames(t *testing.T) {
	store := newMemStore()
	ab, _ := seedDay(t, store)
	svc := newTestGameService(store, nil)
	ctx := context.Background()

	_, err := svc.StartGame(ctx, ab.ID)
	require.NoError(t, err)

	all, err := svc.ListGames(ctx, testTournamentID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active := models.GameStatusActive
	onlyActive, err := svc.ListGames(ctx, testTournamentID, &active)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, ab.ID, onlyActive[0].ID)

	bogus := models.GameStatus("nope")
	_, err = svc.ListGames(ctx, testTournamentID, &bogus)
	assert.ErrorIs(t, err, ErrInvalidGameStatus)
}
