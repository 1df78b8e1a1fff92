package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/pg"
)

const sessionColumns = `id, account_id, stake, crash_point, server_seed, commitment, client_seed,
        cashout_multiplier, payout, status, created_at, finished_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSession(row pgx.Row) (*domain.CrashSession, error) {
	var s domain.CrashSession
	err := row.Scan(&s.ID, &s.AccountID, &s.Stake, &s.CrashPoint, &s.ServerSeed, &s.Commitment, &s.ClientSeed,
		&s.CashOutMultiplier, &s.Payout, &s.Status, &s.CreatedAt, &s.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, session *domain.CrashSession) error {
	query := `
        INSERT INTO crash_sessions (id, account_id, stake, crash_point, server_seed, commitment, client_seed, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query,
		session.ID, session.AccountID, session.Stake, session.CrashPoint, session.ServerSeed,
		session.Commitment, session.ClientSeed, session.Status, session.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save session", zap.String("session_id", session.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.CrashSession, error) {
	query := `SELECT ` + sessionColumns + `
        FROM crash_sessions
        WHERE id = $1
    `
	session, err := scanSession(r.db.QueryRow(ctx, query, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return session, nil
}

// Transition moves the session from one status to another only if it is still in from.
// It returns domain.ErrInvalidTransition when the session exists in a different status.
func (r *Repository) Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus, fields domain.TransitionFields) (*domain.CrashSession, error) {
	query := `
        UPDATE crash_sessions
        SET status = $1, cashout_multiplier = $2, payout = $3, finished_at = $4
        WHERE id = $5 AND status = $6
        RETURNING ` + sessionColumns
	session, err := scanSession(r.db.QueryRow(ctx, query,
		to, fields.CashOutMultiplier, fields.Payout, fields.FinishedAt, sessionID, from,
	))
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to transition session", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM crash_sessions WHERE id = $1)`, sessionID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check session existence", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSessionNotFound
	}
	return nil, domain.ErrInvalidTransition
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.CrashSession, error) {
	query := `SELECT ` + sessionColumns + `
        FROM crash_sessions
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.list(ctx, query, accountID, limit)
}

// FindActive returns the oldest sessions still in ACTIVE status.
func (r *Repository) FindActive(ctx context.Context, limit int) ([]domain.CrashSession, error) {
	query := `SELECT ` + sessionColumns + `
        FROM crash_sessions
        WHERE status = 'ACTIVE'
        ORDER BY created_at ASC
        LIMIT $1
    `
	return r.list(ctx, query, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.CrashSession, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.CrashSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *Repository) StatsByAccount(ctx context.Context, accountID int64) (*domain.AccountStats, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'CASHED_OUT'),
            COALESCE(SUM(stake), 0),
            COALESCE(SUM(payout), 0),
            COALESCE(MAX(cashout_multiplier), 0)
        FROM crash_sessions
        WHERE account_id = $1
    `
	var stats domain.AccountStats
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&stats.TotalSessions, &stats.TotalWins, &stats.TotalWagered, &stats.TotalWon, &stats.HighestMultiplier,
	)
	if err != nil {
		zap.L().Error("failed to get account stats", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// RecentRounds lists the crash points of the latest finished sessions across all accounts.
func (r *Repository) RecentRounds(ctx context.Context, limit int) ([]domain.RoundSummary, error) {
	query := `
        SELECT id, crash_point, status, finished_at
        FROM crash_sessions
        WHERE status <> 'ACTIVE'
        ORDER BY finished_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent rounds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rounds []domain.RoundSummary
	for rows.Next() {
		var round domain.RoundSummary
		if err := rows.Scan(&round.SessionID, &round.CrashPoint, &round.Status, &round.FinishedAt); err != nil {
			zap.L().Error("can't scan round row", zap.Error(err))
			return nil, err
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}
