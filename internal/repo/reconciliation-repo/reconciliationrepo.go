package reconciliationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Record stores a settlement that was decided but could not be applied to the ledger.
func (r *Repository) Record(ctx context.Context, issue *domain.ReconciliationIssue) error {
	query := `
        INSERT INTO reconciliation_issues (session_id, account_id, amount, reason, error)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, issue.SessionID, issue.AccountID, issue.Amount, issue.Reason, issue.Error).
		Scan(&issue.ID, &issue.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reconciliation issue", zap.String("session_id", issue.SessionID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.ReconciliationIssue, error) {
	query := `
        SELECT id, session_id, account_id, amount, reason, error, created_at
        FROM reconciliation_issues
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get reconciliation issues", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var issues []domain.ReconciliationIssue
	for rows.Next() {
		var issue domain.ReconciliationIssue
		err := rows.Scan(&issue.ID, &issue.SessionID, &issue.AccountID, &issue.Amount, &issue.Reason, &issue.Error, &issue.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan reconciliation issue row", zap.Error(err))
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return issues, nil
}
