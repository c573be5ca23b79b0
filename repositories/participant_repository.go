package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-day/models"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantConflict = errors.New("participant email or phone conflict")
)

type RosterRepository interface {
	Create(ctx context.Context, p *models.Participant) error
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	List(ctx context.Context) ([]models.Participant, error)
	ListByIDs(ctx context.Context, exec SQLExecutor, ids []int) ([]models.Participant, error)
	ListCheckedIn(ctx context.Context, exec SQLExecutor) ([]models.Participant, error)
	// ListPowerPool returns every power participant, checked in or not.
	// With forUpdate the rows stay locked until the surrounding transaction ends.
	ListPowerPool(ctx context.Context, exec SQLExecutor, forUpdate bool) ([]models.Participant, error)
	SetPowerUsed(ctx context.Context, exec SQLExecutor, id int, used bool) error
	ResetPowerUsed(ctx context.Context, exec SQLExecutor) error
	SetCheckedIn(ctx context.Context, id int, checkedIn bool, at time.Time) error
	SetPower(ctx context.Context, id int, isPower bool) error
	ResetDailyStatus(ctx context.Context) (int64, error)
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

const participantColumns = `id, name, email, phone, is_proxy, checked_in, checked_in_at, is_power, power_used, created_at`

func (r *postgresRosterRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (name, email, phone, is_proxy, is_power)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Email, p.Phone, p.IsProxy, p.IsPower).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pqUniqueViolation {
			return ErrParticipantConflict
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *postgresRosterRepository) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresRosterRepository) List(ctx context.Context) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants ORDER BY name ASC, id ASC`
	return r.query(ctx, r.db, query)
}

func (r *postgresRosterRepository) ListByIDs(ctx context.Context, exec SQLExecutor, ids []int) ([]models.Participant, error) {
	if len(ids) == 0 {
		return []models.Participant{}, nil
	}
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = ANY($1) ORDER BY id ASC`
	return r.query(ctx, executorOr(exec, r.db), query, toInt64Array(ids))
}

func (r *postgresRosterRepository) ListCheckedIn(ctx context.Context, exec SQLExecutor) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE checked_in = TRUE ORDER BY id ASC`
	return r.query(ctx, executorOr(exec, r.db), query)
}

func (r *postgresRosterRepository) ListPowerPool(ctx context.Context, exec SQLExecutor, forUpdate bool) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE is_power = TRUE ORDER BY id ASC`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return r.query(ctx, executorOr(exec, r.db), query)
}

func (r *postgresRosterRepository) SetPowerUsed(ctx context.Context, exec SQLExecutor, id int, used bool) error {
	query := `UPDATE participants SET power_used = $1 WHERE id = $2`
	result, err := executorOr(exec, r.db).ExecContext(ctx, query, used, id)
	if err != nil {
		return fmt.Errorf("failed to set power_used for participant %d: %w", id, err)
	}
	return checkRowsAffected(result, ErrParticipantNotFound)
}

func (r *postgresRosterRepository) ResetPowerUsed(ctx context.Context, exec SQLExecutor) error {
	query := `UPDATE participants SET power_used = FALSE WHERE is_power = TRUE`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to reset power rotation: %w", err)
	}
	return nil
}

func (r *postgresRosterRepository) SetCheckedIn(ctx context.Context, id int, checkedIn bool, at time.Time) error {
	var checkedInAt sql.NullTime
	if checkedIn {
		checkedInAt = sql.NullTime{Time: at, Valid: true}
	}
	query := `UPDATE participants SET checked_in = $1, checked_in_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, checkedIn, checkedInAt, id)
	if err != nil {
		return fmt.Errorf("failed to update check-in for participant %d: %w", id, err)
	}
	return checkRowsAffected(result, ErrParticipantNotFound)
}

func (r *postgresRosterRepository) SetPower(ctx context.Context, id int, isPower bool) error {
	// Losing the flag also clears the rotation state so a later re-flag starts fresh.
	query := `UPDATE participants SET is_power = $1, power_used = CASE WHEN $1 THEN power_used ELSE FALSE END WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isPower, id)
	if err != nil {
		return fmt.Errorf("failed to update power flag for participant %d: %w", id, err)
	}
	return checkRowsAffected(result, ErrParticipantNotFound)
}

func (r *postgresRosterRepository) ResetDailyStatus(ctx context.Context) (int64, error) {
	query := `UPDATE participants SET checked_in = FALSE, checked_in_at = NULL WHERE checked_in = TRUE`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily check-in: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reset participants: %w", err)
	}
	return n, nil
}

func (r *postgresRosterRepository) query(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Participant, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanParticipant(row rowScanner) (*models.Participant, error) {
	var p models.Participant
	var email, phone sql.NullString
	var checkedInAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Name,
		&email,
		&phone,
		&p.IsProxy,
		&p.CheckedIn,
		&checkedInAt,
		&p.IsPower,
		&p.PowerUsed,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		p.Email = &email.String
	}
	if phone.Valid {
		p.Phone = &phone.String
	}
	if checkedInAt.Valid {
		t := checkedInAt.Time
		p.CheckedInAt = &t
	}
	return &p, nil
}
