package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryDebit  EntryKind = "debit"
	EntryCredit EntryKind = "credit"
)

type EntryReason string

const (
	ReasonBet        EntryReason = "bet"
	ReasonPayout     EntryReason = "payout"
	ReasonDeposit    EntryReason = "deposit"
	ReasonWithdrawal EntryReason = "withdrawal"
)

type SessionStatus string

const (
	StatusActive    SessionStatus = "ACTIVE"
	StatusCashedOut SessionStatus = "CASHED_OUT"
	StatusCrashed   SessionStatus = "CRASHED"
)

// Terminal reports whether no further transitions are allowed from s.
func (s SessionStatus) Terminal() bool {
	return s == StatusCashedOut || s == StatusCrashed
}

type Account struct {
	ID        int64           `db:"id"`
	Balance   decimal.Decimal `db:"balance"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type LedgerEntry struct {
	ID           int64           `db:"id"`
	AccountID    int64           `db:"account_id"`
	Kind         EntryKind       `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	Reason       EntryReason     `db:"reason"`
	SessionID    *string         `db:"session_id"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	CreatedAt    time.Time       `db:"created_at"`
}

type CrashSession struct {
	ID                string           `db:"id"`
	AccountID         int64            `db:"account_id"`
	Stake             decimal.Decimal  `db:"stake"`
	CrashPoint        decimal.Decimal  `db:"crash_point"`
	ServerSeed        string           `db:"server_seed"`
	Commitment        string           `db:"commitment"`
	ClientSeed        string           `db:"client_seed"`
	CashOutMultiplier *decimal.Decimal `db:"cashout_multiplier"`
	Payout            *decimal.Decimal `db:"payout"`
	Status            SessionStatus    `db:"status"`
	CreatedAt         time.Time        `db:"created_at"`
	FinishedAt        *time.Time       `db:"finished_at"`
}

// TransitionFields are the columns a status transition may set alongside the status.
type TransitionFields struct {
	CashOutMultiplier *decimal.Decimal
	Payout            *decimal.Decimal
	FinishedAt        time.Time
}

type ReconciliationIssue struct {
	ID        int64           `db:"id"`
	SessionID string          `db:"session_id"`
	AccountID int64           `db:"account_id"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    EntryReason     `db:"reason"`
	Error     string          `db:"error"`
	CreatedAt time.Time       `db:"created_at"`
}

type AccountStats struct {
	TotalSessions     int64           `db:"total_sessions"`
	TotalWins         int64           `db:"total_wins"`
	TotalWagered      decimal.Decimal `db:"total_wagered"`
	TotalWon          decimal.Decimal `db:"total_won"`
	HighestMultiplier decimal.Decimal `db:"highest_multiplier"`
}

type RoundSummary struct {
	SessionID  string          `db:"id"`
	CrashPoint decimal.Decimal `db:"crash_point"`
	Status     SessionStatus   `db:"status"`
	FinishedAt time.Time       `db:"finished_at"`
}
