package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-day/models"
)

var ErrRoundNotFound = errors.New("round not found")

// RoundRepository records which rounds of a day have been generated.
type RoundRepository interface {
	// Save inserts the round marker or refreshes it when the round is regenerated.
	Save(ctx context.Context, exec SQLExecutor, round *models.Round) error
	Get(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) (*models.Round, error)
	ClearDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) Save(ctx context.Context, exec SQLExecutor, round *models.Round) error {
	query := `
		INSERT INTO rounds (tournament_id, day_index, round_number, strategy)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tournament_id, day_index, round_number)
		DO UPDATE SET strategy = EXCLUDED.strategy, generated_at = NOW()
		RETURNING generated_at`

	err := executorOr(exec, r.db).QueryRowContext(ctx, query,
		round.TournamentID,
		round.DayIndex,
		round.RoundNumber,
		round.Strategy,
	).Scan(&round.GeneratedAt)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pqForeignKeyViolation {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to save round %d: %w", round.RoundNumber, err)
	}
	return nil
}

func (r *postgresRoundRepository) Get(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) (*models.Round, error) {
	query := `
		SELECT tournament_id, day_index, round_number, strategy, generated_at
		FROM rounds
		WHERE tournament_id = $1 AND day_index = $2 AND round_number = $3`

	var round models.Round
	err := executorOr(exec, r.db).QueryRowContext(ctx, query, tournamentID, dayIndex, roundNumber).Scan(
		&round.TournamentID,
		&round.DayIndex,
		&round.RoundNumber,
		&round.Strategy,
		&round.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round %d: %w", roundNumber, err)
	}
	return &round, nil
}

func (r *postgresRoundRepository) ClearDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error {
	query := `DELETE FROM rounds WHERE tournament_id = $1 AND day_index = $2`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID, dayIndex); err != nil {
		return fmt.Errorf("failed to clear rounds of day %d: %w", dayIndex, err)
	}
	return nil
}
