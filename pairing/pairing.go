package pairing

import (
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-day/models"
	"github.com/google/uuid"
)

// Pairing is one matchup chosen by a Strategy.
type Pairing struct {
	A, B  models.Team
	Power bool
}

// Strategy matches already-shuffled power and normal teams into pairings,
// skipping and recording matchups through history.
type Strategy interface {
	Pair(power, normal []models.Team, history *MatchHistory) []Pairing
	Name() string
}

// GreedyFirstFit pairs each team with the first available opponent whose matchup
// has not been played today. It never backtracks, so an unlucky order can leave
// teams sitting out even when a fuller pairing exists. Callers rely on sit-outs
// being a normal outcome, so this is not upgraded to a maximum matching.
type GreedyFirstFit struct{}

func (GreedyFirstFit) Name() string { return "GreedyFirstFit" }

func (GreedyFirstFit) Pair(power, normal []models.Team, history *MatchHistory) []Pairing {
	used := make(map[uuid.UUID]bool, len(power)+len(normal))
	pairings := make([]Pairing, 0, (len(power)+len(normal))/2)

	for _, p := range power {
		for _, n := range normal {
			if used[n.ID] {
				continue
			}
			key := KeyFor(p, n)
			if history.Has(key) {
				continue
			}
			used[p.ID], used[n.ID] = true, true
			history.Add(key)
			pairings = append(pairings, Pairing{A: p, B: n, Power: true})
			break
		}
	}

	for i, t1 := range normal {
		if used[t1.ID] {
			continue
		}
		for _, t2 := range normal[i+1:] {
			if used[t2.ID] {
				continue
			}
			key := KeyFor(t1, t2)
			if history.Has(key) {
				continue
			}
			used[t1.ID], used[t2.ID] = true, true
			history.Add(key)
			pairings = append(pairings, Pairing{A: t1, B: t2})
			break
		}
	}

	return pairings
}

// Round is the output of one generation: the games plus the teams left unpaired.
type Round struct {
	TournamentID int           `json:"tournament_id"`
	DayIndex     int           `json:"day_index"`
	RoundNumber  int           `json:"round_number"`
	Strategy     string        `json:"strategy"`
	Games        []models.Game `json:"games"`
	SitOuts      []models.Team `json:"sit_outs"`
}

// PairingEngine turns a day's teams into the games of one round.
type PairingEngine struct {
	rng      Random
	strategy Strategy
}

// NewPairingEngine builds an engine; a nil strategy means GreedyFirstFit.
func NewPairingEngine(rng Random, strategy Strategy) *PairingEngine {
	if strategy == nil {
		strategy = GreedyFirstFit{}
	}
	return &PairingEngine{rng: orDefault(rng), strategy: strategy}
}

// GenerateRound shuffles power and normal teams independently, runs the strategy
// and emits one upcoming game per pairing. Every emitted matchup is added to history.
func (e *PairingEngine) GenerateRound(tournamentID, dayIndex, roundNumber int, teams []models.Team, history *MatchHistory) (*Round, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("%w: day %d has %d team(s)", ErrTooFewTeams, dayIndex, len(teams))
	}
	if history == nil {
		history = NewMatchHistory()
	}

	var power, normal []models.Team
	for _, t := range teams {
		if t.IsPowerTeam {
			power = append(power, t)
		} else {
			normal = append(normal, t)
		}
	}
	power = shuffled(e.rng, power)
	normal = shuffled(e.rng, normal)

	pairings := e.strategy.Pair(power, normal, history)

	round := &Round{
		TournamentID: tournamentID,
		DayIndex:     dayIndex,
		RoundNumber:  roundNumber,
		Strategy:     e.strategy.Name(),
		Games:        make([]models.Game, 0, len(pairings)),
	}
	playing := make(map[uuid.UUID]struct{}, len(pairings)*2)
	for _, p := range pairings {
		a, b := p.A, p.B
		playing[a.ID], playing[b.ID] = struct{}{}, struct{}{}
		round.Games = append(round.Games, models.Game{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			DayIndex:     dayIndex,
			RoundNumber:  roundNumber,
			TeamAID:      a.ID,
			TeamBID:      b.ID,
			IsPowerGame:  p.Power || a.IsPowerTeam || b.IsPowerTeam,
			Status:       models.GameStatusUpcoming,
			TeamA:        &a,
			TeamB:        &b,
		})
	}

	round.SitOuts = make([]models.Team, 0, len(teams)-len(playing))
	for _, t := range teams {
		if _, ok := playing[t.ID]; !ok {
			round.SitOuts = append(round.SitOuts, t)
		}
	}
	slices.SortFunc(round.SitOuts, func(x, y models.Team) int { return x.Ordinal - y.Ordinal })

	return round, nil
}
