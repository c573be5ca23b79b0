package pairing

import (
	"testing"

	"github.com/Dosada05/tournament-day/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formDay(t *testing.T, n, power int, seed uint64) []models.Team {
	t.Helper()
	participants := roster(t, n, power)
	f, err := NewTeamFormationEngine(NewSeeded(seed)).FormTeams(1, 0, participants, NewRotationState(participants))
	require.NoError(t, err)
	return f.Teams
}

func assertNoSharedTeams(t *testing.T, round *Round) {
	t.Helper()
	seen := map[int]bool{}
	for _, g := range round.Games {
		for _, team := range []*models.Team{g.TeamA, g.TeamB} {
			require.NotNil(t, team)
			assert.False(t, seen[team.Ordinal], "team %d plays twice in round %d", team.Ordinal, round.RoundNumber)
			seen[team.Ordinal] = true
		}
	}
	for _, team := range round.SitOuts {
		assert.False(t, seen[team.Ordinal], "team %d both plays and sits out", team.Ordinal)
	}
}

func TestGenerateRound_TooFewTeams(t *testing.T) {
	engine := NewPairingEngine(NewSeeded(1), nil)
	_, err := engine.GenerateRound(1, 0, 1, []models.Team{{ID: uuid.New(), MemberIDs: []int{1, 2}}}, nil)
	require.ErrorIs(t, err, ErrTooFewTeams)
}

func TestGenerateRound_TwelveNormal(t *testing.T) {
	teams := formDay(t, 12, 0, 3)
	require.Len(t, teams, 6)

	round, err := NewPairingEngine(NewSeeded(3), nil).GenerateRound(1, 0, 1, teams, NewMatchHistory())
	require.NoError(t, err)

	assert.Len(t, round.Games, 3)
	assert.Empty(t, round.SitOuts)
	assert.Equal(t, "GreedyFirstFit", round.Strategy)
	for _, g := range round.Games {
		assert.False(t, g.IsPowerGame)
		assert.Equal(t, models.GameStatusUpcoming, g.Status)
		assert.Equal(t, 1, g.RoundNumber)
		assert.Equal(t, g.TeamA.ID, g.TeamAID)
		assert.Equal(t, g.TeamB.ID, g.TeamBID)
	}
	assertNoSharedTeams(t, round)
}

func TestGenerateRound_NineWithThreePower(t *testing.T) {
	teams := formDay(t, 9, 3, 11)

	round, err := NewPairingEngine(NewSeeded(11), nil).GenerateRound(1, 0, 1, teams, nil)
	require.NoError(t, err)

	require.Len(t, round.Games, 3)
	assert.Empty(t, round.SitOuts)
	for _, g := range round.Games {
		assert.True(t, g.IsPowerGame)
		assert.True(t, g.TeamA.IsPowerTeam, "power pass puts the power team on side A")
		assert.False(t, g.TeamB.IsPowerTeam)
	}
}

func TestGenerateRound_AvoidsRepeatsAcrossRounds(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		teams := formDay(t, 12, 0, seed)
		engine := NewPairingEngine(NewSeeded(seed), nil)
		history := NewMatchHistory()

		first, err := engine.GenerateRound(1, 0, 1, teams, history)
		require.NoError(t, err)
		require.Len(t, first.Games, 3)
		played := map[MatchupKey]bool{}
		for _, g := range first.Games {
			played[KeyFor(*g.TeamA, *g.TeamB)] = true
		}

		second, err := engine.GenerateRound(1, 0, 2, teams, history)
		require.NoError(t, err)
		assertNoSharedTeams(t, second)
		for _, g := range second.Games {
			assert.False(t, played[KeyFor(*g.TeamA, *g.TeamB)], "seed %d repeated a matchup", seed)
		}
		// Sit-outs are allowed, but every team is accounted for.
		assert.Equal(t, len(teams), 2*len(second.Games)+len(second.SitOuts))
		assert.Equal(t, len(first.Games)+len(second.Games), history.Len())
	}
}

func TestGenerateRound_ExhaustedMatchupsSitOut(t *testing.T) {
	a := models.Team{ID: uuid.New(), Ordinal: 1, MemberIDs: []int{1, 2}}
	b := models.Team{ID: uuid.New(), Ordinal: 2, MemberIDs: []int{3, 4}}
	power := models.Team{ID: uuid.New(), Ordinal: 3, MemberIDs: []int{5}, IsPowerTeam: true}
	history := NewMatchHistory(KeyFor(a, b), KeyFor(power, a), KeyFor(power, b))

	round, err := NewPairingEngine(NewSeeded(2), nil).GenerateRound(1, 0, 3, []models.Team{a, b, power}, history)
	require.NoError(t, err)

	assert.Empty(t, round.Games)
	require.Len(t, round.SitOuts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{round.SitOuts[0].Ordinal, round.SitOuts[1].Ordinal, round.SitOuts[2].Ordinal})
}

func TestGenerateRound_PowerTeamWithoutOpponentSitsOut(t *testing.T) {
	teams := []models.Team{
		{ID: uuid.New(), Ordinal: 1, MemberIDs: []int{1}, IsPowerTeam: true},
		{ID: uuid.New(), Ordinal: 2, MemberIDs: []int{2}, IsPowerTeam: true},
		{ID: uuid.New(), Ordinal: 3, MemberIDs: []int{3, 4}},
	}
	round, err := NewPairingEngine(NewSeeded(8), nil).GenerateRound(1, 0, 1, teams, nil)
	require.NoError(t, err)

	require.Len(t, round.Games, 1)
	assert.True(t, round.Games[0].IsPowerGame)
	require.Len(t, round.SitOuts, 1)
	assert.True(t, round.SitOuts[0].IsPowerTeam)
}

type noopStrategy struct{}

func (noopStrategy) Pair([]models.Team, []models.Team, *MatchHistory) []Pairing { return nil }
func (noopStrategy) Name() string                                               { return "noop" }

func TestGenerateRound_UsesInjectedStrategy(t *testing.T) {
	teams := formDay(t, 8, 0, 4)
	round, err := NewPairingEngine(NewSeeded(4), noopStrategy{}).GenerateRound(1, 0, 1, teams, nil)
	require.NoError(t, err)

	assert.Equal(t, "noop", round.Strategy)
	assert.Empty(t, round.Games)
	assert.Len(t, round.SitOuts, len(teams))
}
