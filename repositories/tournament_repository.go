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
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTournamentConflict = errors.New("tournament name conflict")
)

type TournamentRepository interface {
	Create(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error)
	// GetActive returns the most recently created tournament that is not completed.
	GetActive(ctx context.Context) (*models.Tournament, error)
	UpdateStatus(ctx context.Context, id int, status models.TournamentStatus) error
	SetCheckInOpen(ctx context.Context, id int, open bool) error
	SetCurrentDayIndex(ctx context.Context, exec SQLExecutor, id, dayIndex int) error
	// LockDay takes a transaction-scoped advisory lock on (tournamentID, dayIndex).
	// exec must be a transaction; the lock is released at commit or rollback.
	LockDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, dates, start_times, status, current_day_index, check_in_open, created_at`

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, dates, start_times, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, current_day_index, check_in_open, created_at`

	if t.Status == "" {
		t.Status = models.TournamentStatusUpcoming
	}

	err := r.db.QueryRowContext(ctx, query,
		t.Name,
		pq.Array(t.Dates),
		pq.Array(t.StartTimes),
		t.Status,
	).Scan(&t.ID, &t.CurrentDayIndex, &t.CheckInOpen, &t.CreatedAt)
	if err != nil {
		if code, constraint, ok := pqErrorCode(err); ok && code == pqUniqueViolation && constraint == "tournaments_name_key" {
			return ErrTournamentConflict
		}
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	t, err := scanTournament(executorOr(exec, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) GetActive(ctx context.Context) (*models.Tournament, error) {
	query := `
		SELECT ` + tournamentColumns + `
		FROM tournaments
		WHERE status IN ('upcoming', 'active', 'blackout')
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	t, err := scanTournament(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get active tournament: %w", err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, id int, status models.TournamentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update tournament %d status: %w", id, err)
	}
	return checkRowsAffected(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) SetCheckInOpen(ctx context.Context, id int, open bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET check_in_open = $1 WHERE id = $2`, open, id)
	if err != nil {
		return fmt.Errorf("failed to update tournament %d check-in: %w", id, err)
	}
	return checkRowsAffected(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) SetCurrentDayIndex(ctx context.Context, exec SQLExecutor, id, dayIndex int) error {
	result, err := executorOr(exec, r.db).ExecContext(ctx,
		`UPDATE tournaments SET current_day_index = $1 WHERE id = $2`, dayIndex, id)
	if err != nil {
		return fmt.Errorf("failed to update tournament %d day: %w", id, err)
	}
	return checkRowsAffected(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) LockDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error {
	if exec == nil {
		return errors.New("advisory day lock requires a transaction")
	}
	if _, err := exec.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1::int, $2::int)`, int32(tournamentID), int32(dayIndex)); err != nil {
		return fmt.Errorf("failed to lock tournament %d day %d: %w", tournamentID, dayIndex, err)
	}
	return nil
}

func scanTournament(row rowScanner) (*models.Tournament, error) {
	var t models.Tournament
	var dates, startTimes pq.StringArray
	err := row.Scan(
		&t.ID,
		&t.Name,
		&dates,
		&startTimes,
		&t.Status,
		&t.CurrentDayIndex,
		&t.CheckInOpen,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Dates = []string(dates)
	t.StartTimes = []string(startTimes)
	return &t, nil
}
