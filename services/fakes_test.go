package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/pairing"
	"github.com/Dosada05/tournament-day/repositories"
	"github.com/google/uuid"
)

var errInjected = errors.New("injected failure")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore backs every fake repository. memTransactor snapshots it so a failed
// unit of work leaves no trace, as a rolled back transaction would.
type memStore struct {
	mu sync.Mutex

	participants map[int]models.Participant
	nextID       int
	tournaments  map[int]models.Tournament
	teams        map[dayKey][]models.Team
	games        []models.Game
	matchups     map[dayKey]map[pairing.MatchupKey]int
	rounds       map[roundKey]models.Round

	failInsertGames error
	failListRoster  error
}

func newMemStore() *memStore {
	return &memStore{
		participants: make(map[int]models.Participant),
		tournaments:  make(map[int]models.Tournament),
		teams:        make(map[dayKey][]models.Team),
		matchups:     make(map[dayKey]map[pairing.MatchupKey]int),
		rounds:       make(map[roundKey]models.Round),
	}
}

type roundKey struct {
	tournamentID, dayIndex, roundNumber int
}

type memSnapshot struct {
	participants map[int]models.Participant
	nextID       int
	tournaments  map[int]models.Tournament
	teams        map[dayKey][]models.Team
	games        []models.Game
	matchups     map[dayKey]map[pairing.MatchupKey]int
	rounds       map[roundKey]models.Round
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		participants: maps.Clone(s.participants),
		nextID:       s.nextID,
		tournaments:  maps.Clone(s.tournaments),
		teams:        make(map[dayKey][]models.Team, len(s.teams)),
		games:        slices.Clone(s.games),
		matchups:     make(map[dayKey]map[pairing.MatchupKey]int, len(s.matchups)),
		rounds:       maps.Clone(s.rounds),
	}
	for k, v := range s.teams {
		snap.teams[k] = slices.Clone(v)
	}
	for k, v := range s.matchups {
		snap.matchups[k] = maps.Clone(v)
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = snap.participants
	s.nextID = snap.nextID
	s.tournaments = snap.tournaments
	s.teams = snap.teams
	s.games = snap.games
	s.matchups = snap.matchups
	s.rounds = snap.rounds
}

func (s *memStore) addParticipant(p models.Participant) models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.nextID++
		p.ID = s.nextID
	} else if p.ID > s.nextID {
		s.nextID = p.ID
	}
	s.participants[p.ID] = p
	return p
}

func (s *memStore) addTournament(t models.Tournament) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tournaments[t.ID] = t
}

func (s *memStore) roundGames(tid, day, round int) []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Game
	for _, g := range s.games {
		if g.TournamentID == tid && g.DayIndex == day && g.RoundNumber == round {
			out = append(out, g)
		}
	}
	return out
}

func (s *memStore) dayMatchups(tid, day int) map[pairing.MatchupKey]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.matchups[dayKey{tid, day}])
}

type memTransactor struct {
	store *memStore
	// serialize mimics the row and advisory locks a real transaction would hold.
	serialize sync.Mutex
}

func (t *memTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	t.serialize.Lock()
	defer t.serialize.Unlock()
	snap := t.store.snapshot()
	if err := fn(nil); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type memRoster struct{ s *memStore }

func (r memRoster) Create(_ context.Context, p *models.Participant) error {
	for _, existing := range r.all() {
		if p.Email != nil && existing.Email != nil && *p.Email == *existing.Email {
			return repositories.ErrParticipantConflict
		}
	}
	p.CreatedAt = time.Now()
	*p = r.s.addParticipant(*p)
	return nil
}

func (r memRoster) all() []models.Participant {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := slices.Collect(maps.Values(r.s.participants))
	slices.SortFunc(out, func(a, b models.Participant) int { return a.ID - b.ID })
	return out
}

func (r memRoster) filter(keep func(models.Participant) bool) []models.Participant {
	out := make([]models.Participant, 0)
	for _, p := range r.all() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r memRoster) GetByID(_ context.Context, id int) (*models.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	return &p, nil
}

func (r memRoster) List(context.Context) ([]models.Participant, error) {
	if r.s.failListRoster != nil {
		return nil, r.s.failListRoster
	}
	return r.all(), nil
}

func (r memRoster) ListByIDs(_ context.Context, _ repositories.SQLExecutor, ids []int) ([]models.Participant, error) {
	return r.filter(func(p models.Participant) bool { return slices.Contains(ids, p.ID) }), nil
}

func (r memRoster) ListCheckedIn(context.Context, repositories.SQLExecutor) ([]models.Participant, error) {
	return r.filter(func(p models.Participant) bool { return p.CheckedIn }), nil
}

func (r memRoster) ListPowerPool(context.Context, repositories.SQLExecutor, bool) ([]models.Participant, error) {
	return r.filter(func(p models.Participant) bool { return p.IsPower }), nil
}

func (r memRoster) update(id int, fn func(*models.Participant)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[id]
	if !ok {
		return repositories.ErrParticipantNotFound
	}
	fn(&p)
	r.s.participants[id] = p
	return nil
}

func (r memRoster) SetPowerUsed(_ context.Context, _ repositories.SQLExecutor, id int, used bool) error {
	return r.update(id, func(p *models.Participant) { p.PowerUsed = used })
}

func (r memRoster) ResetPowerUsed(context.Context, repositories.SQLExecutor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.participants {
		if p.IsPower {
			p.PowerUsed = false
			r.s.participants[id] = p
		}
	}
	return nil
}

func (r memRoster) SetCheckedIn(_ context.Context, id int, checkedIn bool, at time.Time) error {
	return r.update(id, func(p *models.Participant) {
		p.CheckedIn = checkedIn
		p.CheckedInAt = nil
		if checkedIn {
			p.CheckedInAt = &at
		}
	})
}

func (r memRoster) SetPower(_ context.Context, id int, isPower bool) error {
	return r.update(id, func(p *models.Participant) {
		p.IsPower = isPower
		if !isPower {
			p.PowerUsed = false
		}
	})
}

func (r memRoster) ResetDailyStatus(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, p := range r.s.participants {
		if p.CheckedIn {
			p.CheckedIn, p.CheckedInAt = false, nil
			r.s.participants[id] = p
			n++
		}
	}
	return n, nil
}

type memTeams struct{ s *memStore }

func (r memTeams) ReplaceTeams(_ context.Context, _ repositories.SQLExecutor, tid, day int, teams []models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := dayKey{tid, day}
	stored := make([]models.Team, len(teams))
	for i, t := range teams {
		t.Members = nil
		stored[i] = t
	}
	r.s.teams[key] = stored
	// Deleting a day's teams cascades to their games.
	r.s.games = slices.DeleteFunc(r.s.games, func(g models.Game) bool {
		return g.TournamentID == tid && g.DayIndex == day
	})
	return nil
}

func (r memTeams) FindTeams(_ context.Context, _ repositories.SQLExecutor, tid, day int) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.teams[dayKey{tid, day}]), nil
}

type memGames struct{ s *memStore }

func (r memGames) InsertGames(_ context.Context, _ repositories.SQLExecutor, games []models.Game) error {
	if r.s.failInsertGames != nil {
		return r.s.failInsertGames
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range games {
		g.TeamA, g.TeamB = nil, nil
		r.s.games = append(r.s.games, g)
	}
	return nil
}

func (r memGames) deleteWhere(keep func(models.Game) bool) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.games = slices.DeleteFunc(r.s.games, keep)
}

func (r memGames) DeleteRound(_ context.Context, _ repositories.SQLExecutor, tid, day, round int) error {
	r.deleteWhere(func(g models.Game) bool {
		return g.TournamentID == tid && g.DayIndex == day && g.RoundNumber == round
	})
	return nil
}

func (r memGames) DeleteDay(_ context.Context, _ repositories.SQLExecutor, tid, day int) error {
	r.deleteWhere(func(g models.Game) bool { return g.TournamentID == tid && g.DayIndex == day })
	return nil
}

// joined mirrors the repository's teams join.
func (r memGames) joined(keep func(models.Game) bool) []models.Game {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Game, 0)
	for _, g := range r.s.games {
		if !keep(g) {
			continue
		}
		for _, t := range r.s.teams[dayKey{g.TournamentID, g.DayIndex}] {
			t := t
			switch t.ID {
			case g.TeamAID:
				g.TeamA = &t
			case g.TeamBID:
				g.TeamB = &t
			}
		}
		out = append(out, g)
	}
	return out
}

func (r memGames) FindGames(_ context.Context, _ repositories.SQLExecutor, tid, day, round int) ([]models.Game, error) {
	return r.joined(func(g models.Game) bool {
		return g.TournamentID == tid && g.DayIndex == day && g.RoundNumber == round
	}), nil
}

func (r memGames) ListByTournament(_ context.Context, tid int, status *models.GameStatus) ([]models.Game, error) {
	return r.joined(func(g models.Game) bool {
		return g.TournamentID == tid && (status == nil || g.Status == *status)
	}), nil
}

func (r memGames) GetByID(_ context.Context, id uuid.UUID) (*models.Game, error) {
	games := r.joined(func(g models.Game) bool { return g.ID == id })
	if len(games) == 0 {
		return nil, repositories.ErrGameNotFound
	}
	return &games[0], nil
}

func (r memGames) FindCurrentForParticipant(_ context.Context, tid, pid int) (*models.Game, error) {
	games := r.joined(func(g models.Game) bool {
		return g.TournamentID == tid && g.Status != models.GameStatusFinalized
	})
	games = slices.DeleteFunc(games, func(g models.Game) bool {
		return !g.TeamA.HasMember(pid) && !g.TeamB.HasMember(pid)
	})
	if len(games) == 0 {
		return nil, repositories.ErrGameNotFound
	}
	slices.SortStableFunc(games, func(a, b models.Game) int {
		if a.Status != b.Status {
			if a.Status == models.GameStatusActive {
				return -1
			}
			return 1
		}
		if a.DayIndex != b.DayIndex {
			return b.DayIndex - a.DayIndex
		}
		return a.RoundNumber - b.RoundNumber
	})
	return &games[0], nil
}

func (r memGames) update(id uuid.UUID, fn func(*models.Game) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.games {
		if r.s.games[i].ID == id {
			return fn(&r.s.games[i])
		}
	}
	return repositories.ErrGameNotFound
}

func (r memGames) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.GameStatus, start, end *time.Time) error {
	return r.update(id, func(g *models.Game) error {
		if from != "" && g.Status != from {
			return repositories.ErrGameStatusChange
		}
		g.Status = to
		if start != nil {
			g.StartTime = start
		}
		if end != nil {
			g.EndTime = end
		}
		return nil
	})
}

func (r memGames) UpdateScore(_ context.Context, id uuid.UUID, upd repositories.GameScoreUpdate) error {
	return r.update(id, func(g *models.Game) error {
		if upd.RejectFinalized && g.Status == models.GameStatusFinalized {
			return repositories.ErrGameFinalized
		}
		g.ScoreA, g.ScoreB, g.Status = upd.ScoreA, upd.ScoreB, upd.Status
		if upd.SubmittedBy != nil {
			g.SubmittedBy = upd.SubmittedBy
		}
		if upd.EndTime != nil {
			g.EndTime = upd.EndTime
		}
		return nil
	})
}

func (r memGames) StartUpcoming(_ context.Context, tid int, start, end time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i := range r.s.games {
		g := &r.s.games[i]
		if g.TournamentID == tid && g.Status == models.GameStatusUpcoming {
			g.Status, g.StartTime, g.EndTime = models.GameStatusActive, &start, &end
			n++
		}
	}
	return n, nil
}

type memMatchups struct{ s *memStore }

func (r memMatchups) Append(_ context.Context, _ repositories.SQLExecutor, tid, day, round int, keys []pairing.MatchupKey) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := dayKey{tid, day}
	if r.s.matchups[k] == nil {
		r.s.matchups[k] = make(map[pairing.MatchupKey]int)
	}
	for _, key := range keys {
		if _, ok := r.s.matchups[k][key]; !ok {
			r.s.matchups[k][key] = round
		}
	}
	return nil
}

func (r memMatchups) ListDay(_ context.Context, _ repositories.SQLExecutor, tid, day, exclude int) ([]pairing.MatchupKey, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]pairing.MatchupKey, 0)
	for key, round := range r.s.matchups[dayKey{tid, day}] {
		if round != exclude {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r memMatchups) ClearDay(_ context.Context, _ repositories.SQLExecutor, tid, day int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.matchups, dayKey{tid, day})
	return nil
}

func (r memMatchups) DeleteRound(_ context.Context, _ repositories.SQLExecutor, tid, day, round int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maps.DeleteFunc(r.s.matchups[dayKey{tid, day}], func(_ pairing.MatchupKey, rn int) bool { return rn == round })
	return nil
}

type memRounds struct{ s *memStore }

func (r memRounds) Save(_ context.Context, _ repositories.SQLExecutor, round *models.Round) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	round.GeneratedAt = time.Now()
	r.s.rounds[roundKey{round.TournamentID, round.DayIndex, round.RoundNumber}] = *round
	return nil
}

func (r memRounds) Get(_ context.Context, _ repositories.SQLExecutor, tid, day, round int) (*models.Round, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.rounds[roundKey{tid, day, round}]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}
	return &stored, nil
}

func (r memRounds) ClearDay(_ context.Context, _ repositories.SQLExecutor, tid, day int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maps.DeleteFunc(r.s.rounds, func(k roundKey, _ models.Round) bool {
		return k.tournamentID == tid && k.dayIndex == day
	})
	return nil
}

type memTournaments struct{ s *memStore }

func (r memTournaments) Create(_ context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.tournaments {
		if existing.Name == t.Name {
			return repositories.ErrTournamentConflict
		}
	}
	t.ID = len(r.s.tournaments) + 1
	t.CreatedAt = time.Now()
	r.s.tournaments[t.ID] = *t
	return nil
}

func (r memTournaments) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r memTournaments) GetActive(context.Context) (*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var best *models.Tournament
	for _, t := range r.s.tournaments {
		if t.Status == models.TournamentStatusCompleted {
			continue
		}
		if best == nil || t.ID > best.ID {
			t := t
			best = &t
		}
	}
	if best == nil {
		return nil, repositories.ErrTournamentNotFound
	}
	return best, nil
}

func (r memTournaments) update(id int, fn func(*models.Tournament)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	fn(&t)
	r.s.tournaments[id] = t
	return nil
}

func (r memTournaments) UpdateStatus(_ context.Context, id int, status models.TournamentStatus) error {
	return r.update(id, func(t *models.Tournament) { t.Status = status })
}

func (r memTournaments) SetCheckInOpen(_ context.Context, id int, open bool) error {
	return r.update(id, func(t *models.Tournament) { t.CheckInOpen = open })
}

func (r memTournaments) SetCurrentDayIndex(_ context.Context, _ repositories.SQLExecutor, id, day int) error {
	return r.update(id, func(t *models.Tournament) { t.CurrentDayIndex = day })
}

func (r memTournaments) LockDay(context.Context, repositories.SQLExecutor, int, int) error {
	return nil
}

func gameScore(a, b int) repositories.GameScoreUpdate {
	return repositories.GameScoreUpdate{ScoreA: a, ScoreB: b, Status: models.GameStatusFinalized}
}
