package pairing

import (
	"github.com/Dosada05/tournament-day/models"
	"github.com/google/uuid"
)

// Formation is the full team set for one day plus the rotation outcome that produced it.
type Formation struct {
	Distribution Distribution
	Teams        []models.Team
	Rotation     Selection
}

// PowerTeams returns the solo teams of the formation.
func (f *Formation) PowerTeams() []models.Team {
	out := make([]models.Team, 0, f.Distribution.PowerTeams)
	for _, t := range f.Teams {
		if t.IsPowerTeam {
			out = append(out, t)
		}
	}
	return out
}

// TeamFormationEngine partitions the checked-in roster into a day's teams.
type TeamFormationEngine struct {
	rng      Random
	rotation *RotationTracker
}

func NewTeamFormationEngine(rng Random) *TeamFormationEngine {
	rng = orDefault(rng)
	return &TeamFormationEngine{rng: rng, rotation: NewRotationTracker(rng)}
}

// FormTeams builds the teams for (tournamentID, dayIndex). Participants that are not
// checked in are ignored. The selected power participants become solo teams and
// everybody else is shuffled and paired consecutively. Power teams get the lowest ordinals.
func (e *TeamFormationEngine) FormTeams(tournamentID, dayIndex int, participants []models.Participant, state RotationState) (*Formation, error) {
	roster := make([]models.Participant, 0, len(participants))
	seen := make(map[int]struct{}, len(participants))
	for _, p := range participants {
		if !p.CheckedIn {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		roster = append(roster, p)
	}

	dist, err := CalculateDistribution(len(roster))
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Participant, 0)
	for _, p := range roster {
		if p.IsPower {
			candidates = append(candidates, p)
		}
	}
	selection, err := e.rotation.SelectPower(dist.PowerTeams, candidates, state)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Participant, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}
	solo := make(map[int]struct{}, len(selection.Selected))
	teams := make([]models.Team, 0, dist.PowerTeams+dist.NormalTeams)
	for _, id := range selection.Selected {
		solo[id] = struct{}{}
		teams = append(teams, models.Team{
			MemberIDs:   []int{id},
			IsPowerTeam: true,
			Members:     []models.Participant{byID[id]},
		})
	}

	rest := make([]models.Participant, 0, len(roster)-len(solo))
	for _, p := range roster {
		if _, ok := solo[p.ID]; !ok {
			rest = append(rest, p)
		}
	}
	rest = shuffled(e.rng, rest)
	for len(rest) >= 2 {
		a, b := rest[0], rest[1]
		rest = rest[2:]
		teams = append(teams, models.Team{
			MemberIDs: []int{a.ID, b.ID},
			Members:   []models.Participant{a, b},
		})
	}

	if len(rest) > 0 {
		leftover := make([]int, len(rest))
		for i, p := range rest {
			leftover[i] = p.ID
		}
		return nil, &InvariantError{DayIndex: dayIndex, Leftover: leftover}
	}

	for i := range teams {
		teams[i].ID = uuid.New()
		teams[i].TournamentID = tournamentID
		teams[i].DayIndex = dayIndex
		teams[i].Ordinal = i + 1
	}

	return &Formation{Distribution: dist, Teams: teams, Rotation: selection}, nil
}
