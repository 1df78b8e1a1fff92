package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, balance, updated_at
        FROM accounts
        WHERE id = $1
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, accountID).Scan(&account.ID, &account.Balance, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// LockAccount reads the account row with FOR UPDATE. It must run inside a transaction.
func (r *Repository) LockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, balance, updated_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, accountID).Scan(&account.ID, &account.Balance, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) CreateAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, balance)
        VALUES ($1, 0)
        ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
        RETURNING id, balance, updated_at
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, accountID).Scan(&account.ID, &account.Balance, &account.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create account", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	query := `
        UPDATE accounts
        SET balance = $1, updated_at = NOW()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, balance, accountID)
	if err != nil {
		zap.L().Error("failed to update balance", zap.Int64("account_id", accountID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (account_id, kind, amount, reason, session_id, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.AccountID, entry.Kind, entry.Amount, entry.Reason, entry.SessionID, entry.BalanceAfter,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Int64("account_id", entry.AccountID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListEntries(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, kind, amount, reason, session_id, balance_after, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.Reason, &e.SessionID, &e.BalanceAfter, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// SumEntries returns the credit and debit totals of an account's ledger.
func (r *Repository) SumEntries(ctx context.Context, accountID int64) (credits, debits decimal.Decimal, err error) {
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE kind = 'credit'), 0),
            COALESCE(SUM(amount) FILTER (WHERE kind = 'debit'), 0)
        FROM ledger_entries
        WHERE account_id = $1
    `
	err = r.db.QueryRow(ctx, query, accountID).Scan(&credits, &debits)
	if err != nil {
		zap.L().Error("failed to sum ledger entries", zap.Int64("account_id", accountID), zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return credits, debits, nil
}
