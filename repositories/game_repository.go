package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-day/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameFinalized    = errors.New("game already finalized")
	ErrGameStatusChange = errors.New("game is not in the expected status")
	ErrGameTeamInvalid  = errors.New("game references unknown team")
)

// GameScoreUpdate carries the columns written when a score is recorded.
type GameScoreUpdate struct {
	ScoreA      int
	ScoreB      int
	Status      models.GameStatus
	SubmittedBy *string
	EndTime     *time.Time
	// RejectFinalized makes the update fail with ErrGameFinalized when the row is already finalized.
	RejectFinalized bool
}

type GameRepository interface {
	InsertGames(ctx context.Context, exec SQLExecutor, games []models.Game) error
	DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) error
	DeleteDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error
	FindGames(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) ([]models.Game, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.GameStatus) ([]models.Game, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	// FindCurrentForParticipant returns the participant's active game, or else the
	// earliest upcoming one of the latest day. ErrGameNotFound when there is none.
	FindCurrentForParticipant(ctx context.Context, tournamentID, participantID int) (*models.Game, error)
	// UpdateStatus moves a game from one status to another. An empty from accepts any current status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.GameStatus, start, end *time.Time) error
	UpdateScore(ctx context.Context, id uuid.UUID, upd GameScoreUpdate) error
	// StartUpcoming activates every upcoming game of the tournament and returns how many moved.
	StartUpcoming(ctx context.Context, tournamentID int, start, end time.Time) (int64, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameSelect = `
	SELECT
		g.id, g.tournament_id, g.day_index, g.round_number, g.team_a_id, g.team_b_id,
		g.is_power_game, g.status, g.score_a, g.score_b, g.start_time, g.end_time,
		g.submitted_by, g.created_at,
		ta.member_ids, ta.is_power_team, ta.ordinal,
		tb.member_ids, tb.is_power_team, tb.ordinal
	FROM games g
	JOIN teams ta ON ta.id = g.team_a_id
	JOIN teams tb ON tb.id = g.team_b_id`

func (r *postgresGameRepository) InsertGames(ctx context.Context, exec SQLExecutor, games []models.Game) error {
	e := executorOr(exec, r.db)
	query := `
		INSERT INTO games (id, tournament_id, day_index, round_number, team_a_id, team_b_id, is_power_game, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	for i := range games {
		g := &games[i]
		err := e.QueryRowContext(ctx, query,
			g.ID,
			g.TournamentID,
			g.DayIndex,
			g.RoundNumber,
			g.TeamAID,
			g.TeamBID,
			g.IsPowerGame,
			g.Status,
		).Scan(&g.CreatedAt)
		if err != nil {
			if code, _, ok := pqErrorCode(err); ok && code == pqForeignKeyViolation {
				return ErrGameTeamInvalid
			}
			return fmt.Errorf("failed to insert game %s: %w", g.ID, err)
		}
	}
	return nil
}

func (r *postgresGameRepository) DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) error {
	query := `DELETE FROM games WHERE tournament_id = $1 AND day_index = $2 AND round_number = $3`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID, dayIndex, roundNumber); err != nil {
		return fmt.Errorf("failed to delete games of round %d: %w", roundNumber, err)
	}
	return nil
}

func (r *postgresGameRepository) DeleteDay(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex int) error {
	query := `DELETE FROM games WHERE tournament_id = $1 AND day_index = $2`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID, dayIndex); err != nil {
		return fmt.Errorf("failed to delete games of day %d: %w", dayIndex, err)
	}
	return nil
}

func (r *postgresGameRepository) FindGames(ctx context.Context, exec SQLExecutor, tournamentID, dayIndex, roundNumber int) ([]models.Game, error) {
	query := gameSelect + `
		WHERE g.tournament_id = $1 AND g.day_index = $2 AND g.round_number = $3
		ORDER BY g.is_power_game DESC, ta.ordinal ASC`
	return r.query(ctx, executorOr(exec, r.db), query, tournamentID, dayIndex, roundNumber)
}

func (r *postgresGameRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.GameStatus) ([]models.Game, error) {
	query := gameSelect + ` WHERE g.tournament_id = $1`
	args := []interface{}{tournamentID}
	if status != nil {
		query += ` AND g.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY g.day_index ASC, g.round_number ASC, ta.ordinal ASC`
	return r.query(ctx, r.db, query, args...)
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	games, err := r.query(ctx, r.db, gameSelect+` WHERE g.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrGameNotFound
	}
	return &games[0], nil
}

func (r *postgresGameRepository) FindCurrentForParticipant(ctx context.Context, tournamentID, participantID int) (*models.Game, error) {
	query := gameSelect + `
		WHERE g.tournament_id = $1
			AND g.status IN ('upcoming', 'active')
			AND $2 = ANY(ta.member_ids || tb.member_ids)
		ORDER BY g.status = 'active' DESC, g.day_index DESC, g.round_number ASC, ta.ordinal ASC
		LIMIT 1`

	games, err := r.query(ctx, r.db, query, tournamentID, participantID)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrGameNotFound
	}
	return &games[0], nil
}

func (r *postgresGameRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.GameStatus, start, end *time.Time) error {
	query := `
		UPDATE games
		SET status = $1,
			start_time = COALESCE($2, start_time),
			end_time = COALESCE($3, end_time)
		WHERE id = $4 AND ($5::text = '' OR status = $5::text)`

	result, err := r.db.ExecContext(ctx, query, to, nullTime(start), nullTime(end), id, string(from))
	if err != nil {
		return fmt.Errorf("failed to update status of game %s: %w", id, err)
	}
	if from == "" {
		return checkRowsAffected(result, ErrGameNotFound)
	}
	return checkRowsAffected(result, ErrGameStatusChange)
}

func (r *postgresGameRepository) UpdateScore(ctx context.Context, id uuid.UUID, upd GameScoreUpdate) error {
	query := `
		UPDATE games
		SET score_a = $1,
			score_b = $2,
			status = $3,
			submitted_by = COALESCE($4, submitted_by),
			end_time = COALESCE($5, end_time)
		WHERE id = $6 AND (NOT $7::boolean OR status <> 'finalized')`

	var submittedBy sql.NullString
	if upd.SubmittedBy != nil {
		submittedBy = sql.NullString{String: *upd.SubmittedBy, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		upd.ScoreA,
		upd.ScoreB,
		upd.Status,
		submittedBy,
		nullTime(upd.EndTime),
		id,
		upd.RejectFinalized,
	)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pqCheckViolation {
			return fmt.Errorf("game %s: score rejected by constraint: %w", id, err)
		}
		return fmt.Errorf("failed to update score of game %s: %w", id, err)
	}
	if upd.RejectFinalized {
		return checkRowsAffected(result, ErrGameFinalized)
	}
	return checkRowsAffected(result, ErrGameNotFound)
}

func (r *postgresGameRepository) StartUpcoming(ctx context.Context, tournamentID int, start, end time.Time) (int64, error) {
	query := `
		UPDATE games
		SET status = 'active', start_time = $1, end_time = $2
		WHERE tournament_id = $3 AND status = 'upcoming'`

	result, err := r.db.ExecContext(ctx, query, start, end, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("failed to start upcoming games: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count started games: %w", err)
	}
	return n, nil
}

func (r *postgresGameRepository) query(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Game, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		var start, end sql.NullTime
		var submittedBy sql.NullString
		var membersA, membersB pq.Int64Array
		teamA := models.Team{}
		teamB := models.Team{}

		err := rows.Scan(
			&g.ID, &g.TournamentID, &g.DayIndex, &g.RoundNumber, &g.TeamAID, &g.TeamBID,
			&g.IsPowerGame, &g.Status, &g.ScoreA, &g.ScoreB, &start, &end,
			&submittedBy, &g.CreatedAt,
			&membersA, &teamA.IsPowerTeam, &teamA.Ordinal,
			&membersB, &teamB.IsPowerTeam, &teamB.Ordinal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		if start.Valid {
			g.StartTime = &start.Time
		}
		if end.Valid {
			g.EndTime = &end.Time
		}
		if submittedBy.Valid {
			g.SubmittedBy = &submittedBy.String
		}

		teamA.ID, teamA.TournamentID, teamA.DayIndex, teamA.MemberIDs = g.TeamAID, g.TournamentID, g.DayIndex, fromInt64Array(membersA)
		teamB.ID, teamB.TournamentID, teamB.DayIndex, teamB.MemberIDs = g.TeamBID, g.TournamentID, g.DayIndex, fromInt64Array(membersB)
		g.TeamA = &teamA
		g.TeamB = &teamB

		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}
	return games, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
