package ledgerservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/pg"
)

type Repo interface {
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	LockAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error
	InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error)
	SumEntries(ctx context.Context, accountID int64) (credits, debits decimal.Decimal, err error)
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLedgerMismatch    = errors.New("balance does not match ledger")
)

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// ValidAmount reports whether amount is positive with at most two decimal places.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(2))
}

func (s *Service) Debit(ctx context.Context, accountID int64, amount decimal.Decimal, reason domain.EntryReason, sessionID *string) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, domain.EntryDebit, amount, reason, sessionID)
}

func (s *Service) Credit(ctx context.Context, accountID int64, amount decimal.Decimal, reason domain.EntryReason, sessionID *string) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, domain.EntryCredit, amount, reason, sessionID)
}

// apply locks the account row, moves the balance and appends the entry in one transaction.
func (s *Service) apply(ctx context.Context, accountID int64, kind domain.EntryKind, amount decimal.Decimal, reason domain.EntryReason, sessionID *string) (*domain.LedgerEntry, error) {
	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}

		balance := account.Balance
		if kind == domain.EntryDebit {
			if balance.LessThan(amount) {
				return ErrInsufficientFunds
			}
			balance = balance.Sub(amount)
		} else {
			balance = balance.Add(amount)
		}

		if err := s.repo.UpdateBalance(ctx, accountID, balance); err != nil {
			return err
		}

		entry, err = s.repo.InsertEntry(ctx, &domain.LedgerEntry{
			AccountID:    accountID,
			Kind:         kind,
			Amount:       amount,
			Reason:       reason,
			SessionID:    sessionID,
			BalanceAfter: balance,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, domain.ErrAccountNotFound) {
			zap.L().Error("ledger operation failed",
				zap.Int64("account_id", accountID),
				zap.String("kind", string(kind)),
				zap.String("amount", amount.String()),
				zap.Error(err))
		}
		return nil, err
	}
	return entry, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetEntries(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.repo.ListEntries(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Reconcile checks that the stored balance equals credits minus debits.
func (s *Service) Reconcile(ctx context.Context, accountID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		credits, debits, err := s.repo.SumEntries(ctx, accountID)
		if err != nil {
			return err
		}
		if !account.Balance.Equal(credits.Sub(debits)) {
			zap.L().Error("ledger mismatch",
				zap.Int64("account_id", accountID),
				zap.String("balance", account.Balance.String()),
				zap.String("credits", credits.String()),
				zap.String("debits", debits.String()))
			return ErrLedgerMismatch
		}
		return nil
	})
}

// OpenAccount creates the account if it does not exist yet and books the opening deposit.
// An existing account is returned untouched.
func (s *Service) OpenAccount(ctx context.Context, accountID int64, deposit decimal.Decimal) (*domain.Account, error) {
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if existing != nil {
			account = existing
			return nil
		}
		if _, err := s.repo.CreateAccount(ctx, accountID); err != nil {
			return err
		}
		if deposit.IsPositive() {
			if _, err := s.Credit(ctx, accountID, deposit, domain.ReasonDeposit, nil); err != nil {
				return err
			}
		}
		account, err = s.repo.GetAccount(ctx, accountID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to open account", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return account, nil
}
