package services

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/Dosada05/tournament-day/models"
	"github.com/Dosada05/tournament-day/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	standingsSheet = "Standings"
	unknownName    = "Unknown"
)

type StandingsService interface {
	Standings(ctx context.Context, tournamentID int) ([]models.Standing, error)
	ExportXLSX(ctx context.Context, tournamentID int, w io.Writer) error
}

type standingsService struct {
	games  repositories.GameRepository
	roster repositories.RosterRepository
}

func NewStandingsService(games repositories.GameRepository, roster repositories.RosterRepository) StandingsService {
	return &standingsService{games: games, roster: roster}
}

// Standings aggregates finalized games per participant. Every member of the
// higher-scoring side gets a win; a tie gives no win to either side. Each
// member is credited with the points of their own side.
func (s *standingsService) Standings(ctx context.Context, tournamentID int) ([]models.Standing, error) {
	finalized := models.GameStatusFinalized
	games, err := s.games.ListByTournament(ctx, tournamentID, &finalized)
	if err != nil {
		return nil, translateRepoError("list finalized games", err)
	}

	byID := make(map[int]*models.Standing)
	credit := func(ids []int, points int, won bool) {
		for _, id := range ids {
			st, ok := byID[id]
			if !ok {
				st = &models.Standing{ParticipantID: id}
				byID[id] = st
			}
			st.GamesPlayed++
			st.TotalPoints += points
			if won {
				st.Wins++
			}
		}
	}
	for _, g := range games {
		if g.TeamA == nil || g.TeamB == nil {
			continue
		}
		credit(g.TeamA.MemberIDs, g.ScoreA, g.ScoreA > g.ScoreB)
		credit(g.TeamB.MemberIDs, g.ScoreB, g.ScoreB > g.ScoreA)
	}

	if len(byID) == 0 {
		return []models.Standing{}, nil
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	participants, err := s.roster.ListByIDs(ctx, nil, ids)
	if err != nil {
		return nil, translateRepoError("load standings names", err)
	}
	names := make(map[int]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	out := make([]models.Standing, 0, len(byID))
	for id, st := range byID {
		st.Name = unknownName
		if name, ok := names[id]; ok {
			st.Name = name
		}
		out = append(out, *st)
	}
	SortStandings(out)
	return out, nil
}

// SortStandings orders by wins desc, then games played asc, then name and id asc.
func SortStandings(st []models.Standing) {
	slices.SortFunc(st, func(a, b models.Standing) int {
		return cmp.Or(
			cmp.Compare(b.Wins, a.Wins),
			cmp.Compare(a.GamesPlayed, b.GamesPlayed),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ParticipantID, b.ParticipantID),
		)
	})
}

func (s *standingsService) ExportXLSX(ctx context.Context, tournamentID int, w io.Writer) error {
	standings, err := s.Standings(ctx, tournamentID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), standingsSheet); err != nil {
		return fmt.Errorf("failed to name standings sheet: %w", err)
	}

	header := []interface{}{"Rank", "Name", "Wins", "Games Played", "Total Points"}
	if err := f.SetSheetRow(standingsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write standings header: %w", err)
	}
	for i, st := range standings {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, st.Name, st.Wins, st.GamesPlayed, st.TotalPoints}
		if err := f.SetSheetRow(standingsSheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write standings row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write standings workbook: %w", err)
	}
	return nil
}
