package pairing

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-day/models"
)

// MatchupKey identifies an unordered pair of teams by their sorted member ids,
// e.g. "3,8|12". It does not depend on team identity, so a matchup between the
// same people is recognized even after teams are renumbered.
type MatchupKey string

func memberSet(ids []int) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// NewMatchupKey builds the key for two member-id sets in either order.
func NewMatchupKey(a, b []int) MatchupKey {
	sa, sb := memberSet(a), memberSet(b)
	if sb < sa {
		sa, sb = sb, sa
	}
	return MatchupKey(sa + "|" + sb)
}

// KeyFor returns the matchup key of two teams.
func KeyFor(a, b models.Team) MatchupKey {
	return NewMatchupKey(a.MemberIDs, b.MemberIDs)
}

// MatchHistory is the set of matchups already played on one tournament day.
// Append-only while the day's teams stand; the zero value is not usable, use NewMatchHistory.
type MatchHistory struct {
	keys map[MatchupKey]struct{}
}

func NewMatchHistory(keys ...MatchupKey) *MatchHistory {
	h := &MatchHistory{keys: make(map[MatchupKey]struct{}, len(keys))}
	for _, k := range keys {
		h.keys[k] = struct{}{}
	}
	return h
}

func (h *MatchHistory) Has(k MatchupKey) bool {
	_, ok := h.keys[k]
	return ok
}

func (h *MatchHistory) Add(k MatchupKey) {
	h.keys[k] = struct{}{}
}

func (h *MatchHistory) Len() int {
	return len(h.keys)
}

// Keys returns the recorded keys in sorted order.
func (h *MatchHistory) Keys() []MatchupKey {
	out := make([]MatchupKey, 0, len(h.keys))
	for k := range h.keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
