package pairing

import (
	"testing"

	"github.com/Dosada05/tournament-day/models"
	"github.com/brianvoe/gofakeit/v7"
)

// roster returns n checked-in participants with ids 1..n; the last `power` of them are power participants.
func roster(t *testing.T, n, power int) []models.Participant {
	t.Helper()
	faker := gofakeit.New(uint64(n*31 + power))
	out := make([]models.Participant, n)
	for i := range out {
		out[i] = models.Participant{
			ID:        i + 1,
			Name:      faker.Name(),
			CheckedIn: true,
			IsPower:   i >= n-power,
		}
	}
	return out
}

func memberIDs(teams []models.Team) []int {
	var ids []int
	for _, team := range teams {
		ids = append(ids, team.MemberIDs...)
	}
	return ids
}
