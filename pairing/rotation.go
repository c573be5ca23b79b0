package pairing

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Dosada05/tournament-day/models"
)

// RotationState maps every power participant in the pool, checked in or not,
// to its powerUsed flag. It is passed into the tracker and a new value comes back;
// persisting it is the roster store's job.
type RotationState map[int]bool

// NewRotationState builds the state from the power pool. Non-power participants are ignored.
func NewRotationState(pool []models.Participant) RotationState {
	state := make(RotationState, len(pool))
	for _, p := range pool {
		if p.IsPower {
			state[p.ID] = p.PowerUsed
		}
	}
	return state
}

func (s RotationState) Clone() RotationState {
	if s == nil {
		return RotationState{}
	}
	return maps.Clone(s)
}

// Unused returns the ids with powerUsed == false, sorted.
func (s RotationState) Unused() []int {
	ids := make([]int, 0, len(s))
	for id, used := range s {
		if !used {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Selection is the outcome of one SelectPower call.
type Selection struct {
	Selected []int         `json:"selected"`
	State    RotationState `json:"-"`
	// Reset is true when the unused subset ran short and the whole pool was cleared first.
	Reset bool `json:"reset"`
}

// RotationTracker picks which power participants play solo, rotating through
// the pool so nobody repeats before everyone has had a turn.
type RotationTracker struct {
	rng Random
}

func NewRotationTracker(rng Random) *RotationTracker {
	return &RotationTracker{rng: orDefault(rng)}
}

// SelectPower chooses count participants from candidates (the checked-in power
// participants), preferring those not yet used. When too few unused candidates
// remain, every flag in the pool is reset before choosing. Selected participants
// are marked used in the returned state.
func (t *RotationTracker) SelectPower(count int, candidates []models.Participant, state RotationState) (Selection, error) {
	next := state.Clone()

	eligible := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsPower || !c.CheckedIn {
			continue
		}
		if _, known := next[c.ID]; !known {
			next[c.ID] = c.PowerUsed
		}
		eligible = append(eligible, c.ID)
	}
	slices.Sort(eligible)
	eligible = slices.Compact(eligible)

	if count <= 0 {
		return Selection{Selected: []int{}, State: next}, nil
	}
	if len(eligible) < count {
		return Selection{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientPowerParticipants, count, len(eligible))
	}

	unused := make([]int, 0, len(eligible))
	for _, id := range eligible {
		if !next[id] {
			unused = append(unused, id)
		}
	}

	reset := false
	if len(unused) < count {
		for id := range next {
			next[id] = false
		}
		unused = eligible
		reset = true
	}

	selected := shuffled(t.rng, unused)[:count]
	slices.Sort(selected)
	for _, id := range selected {
		next[id] = true
	}

	return Selection{Selected: selected, State: next, Reset: reset}, nil
}
