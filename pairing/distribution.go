package pairing

import "fmt"

const minParticipants = 3

// Distribution is how many teams of each shape a day needs.
// NormalTeams*2 + PowerTeams always equals the participant count.
type Distribution struct {
	NormalTeams int `json:"normal_teams"`
	PowerTeams  int `json:"power_teams"`
}

// Participants returns the number of participants the distribution places.
func (d Distribution) Participants() int {
	return d.NormalTeams*2 + d.PowerTeams
}

// PlannedGames returns the normal and power game counts of a complete pairing:
// each power team faces one normal team and the remaining normal teams play each other.
func (d Distribution) PlannedGames() (normal, power int) {
	power = min(d.PowerTeams, d.NormalTeams)
	normal = (d.NormalTeams - power) / 2
	return normal, power
}

// CalculateDistribution splits n participants by n mod 4. Any remainder is absorbed
// by reserving a small block of participants into solo power teams plus the normal
// teams they face, so the rest always divides into whole normal games.
func CalculateDistribution(n int) (Distribution, error) {
	if n < minParticipants {
		return Distribution{}, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, n)
	}

	var reserve, power int
	switch n % 4 {
	case 0:
		reserve, power = 0, 0
	case 1:
		reserve, power = 9, 3
	case 2:
		reserve, power = 6, 2
	case 3:
		reserve, power = 3, 1
	}
	if n < reserve {
		return Distribution{}, fmt.Errorf("%w: %d participants (n mod 4 = %d needs at least %d)",
			ErrInvalidDistribution, n, n%4, reserve)
	}

	reservedNormal := (reserve - power) / 2
	return Distribution{
		NormalTeams: reservedNormal + (n-reserve)/2,
		PowerTeams:  power,
	}, nil
}
