package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/tournament-day/pairing"
)

// MatchupRepository stores the per-day set of team pairings already played.
type MatchupRepository interface {
	// Append records keys for a round. Keys already present for the day are ignored.
	Append(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int, keys []pairing.MatchupKey) error
	// ListDay returns the day's keys, leaving out those recorded by excludeRound (0 excludes none).
	ListDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, excludeRound int) ([]pairing.MatchupKey, error)
	ClearDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error
	DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) error
}

type postgresMatchupRepository struct {
	db *sql.DB
}

func NewPostgresMatchupRepository(db *sql.DB) MatchupRepository {
	return &postgresMatchupRepository{db: db}
}

func (r *postgresMatchupRepository) Append(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int, keys []pairing.MatchupKey) error {
	e := executorOr(exec, r.db)
	query := `
		INSERT INTO matchups (tournament_id, day_index, matchup_key, round_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tournament_id, day_index, matchup_key) DO NOTHING`

	for _, key := range keys {
		if _, err := e.ExecContext(ctx, query, tournamentID, dayIndex, string(key), roundNumber); err != nil {
			return fmt.Errorf("failed to record matchup %q: %w", key, err)
		}
	}
	return nil
}

func (r *postgresMatchupRepository) ListDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, excludeRound int) ([]pairing.MatchupKey, error) {
	query := `
		SELECT matchup_key
		FROM matchups
		WHERE tournament_id = $1 AND day_index = $2 AND round_number <> $3
		ORDER BY matchup_key ASC`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query, tournamentID, dayIndex, excludeRound)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups: %w", err)
	}
	defer rows.Close()

	keys := make([]pairing.MatchupKey, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan matchup row: %w", err)
		}
		keys = append(keys, pairing.MatchupKey(key))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matchup rows: %w", err)
	}
	return keys, nil
}

func (r *postgresMatchupRepository) ClearDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error {
	query := `DELETE FROM matchups WHERE tournament_id = $1 AND day_index = $2`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID, dayIndex); err != nil {
		return fmt.Errorf("failed to clear matchups of day %d: %w", dayIndex, err)
	}
	return nil
}

func (r *postgresMatchupRepository) DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) error {
	query := `DELETE FROM matchups WHERE tournament_id = $1 AND day_index = $2 AND round_number = $3`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID, dayIndex, roundNumber); err != nil {
		return fmt.Errorf("failed to delete matchups of round %d: %w", roundNumber, err)
	}
	return nil
}
