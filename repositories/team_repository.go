package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-day/models"
	"github.com/lib/pq"
)

var (
	ErrTeamConflict          = errors.New("team ordinal conflict for tournament day")
	ErrTeamTournamentInvalid = errors.New("team references unknown tournament")
)

type TeamRepository interface {
	// ReplaceTeams deletes the day's teams (cascading to their games) and inserts teams.
	ReplaceTeams(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int, teams []models.Team) error
	FindTeams(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) ReplaceTeams(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int, teams []models.Team) error {
	e := executorOr(exec, r.db)

	if _, err := e.ExecContext(ctx,
		`DELETE FROM teams WHERE tournament_id = $1 AND day_index = $2`,
		tournamentID, dayIndex,
	); err != nil {
		return fmt.Errorf("failed to clear teams for tournament %d day %d: %w", tournamentID, dayIndex, err)
	}

	query := `
		INSERT INTO teams (id, tournament_id, day_index, member_ids, is_power_team, ordinal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	for i := range teams {
		t := &teams[i]
		err := e.QueryRowContext(ctx, query,
			t.ID,
			tournamentID,
			dayIndex,
			toInt64Array(t.MemberIDs),
			t.IsPowerTeam,
			t.Ordinal,
		).Scan(&t.CreatedAt)
		if err != nil {
			if code, _, ok := pqErrorCode(err); ok {
				switch code {
				case pqUniqueViolation:
					return ErrTeamConflict
				case pqForeignKeyViolation:
					return ErrTeamTournamentInvalid
				}
			}
			return fmt.Errorf("failed to insert team %d: %w", t.Ordinal, err)
		}
	}
	return nil
}

func (r *postgresTeamRepository) FindTeams(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) ([]models.Team, error) {
	query := `
		SELECT id, tournament_id, day_index, member_ids, is_power_team, ordinal, created_at
		FROM teams
		WHERE tournament_id = $1 AND day_index = $2
		ORDER BY ordinal ASC`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query, tournamentID, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		var members pq.Int64Array
		if err := rows.Scan(&t.ID, &t.TournamentID, &t.DayIndex, &members, &t.IsPowerTeam, &t.Ordinal, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		t.MemberIDs = fromInt64Array(members)
		teams = append(teams, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return teams, nil
}
