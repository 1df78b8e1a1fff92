package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/crashbet/internal/domain"
)

func newSession(id string, accountID int64, createdAt time.Time) *domain.CrashSession {
	return &domain.CrashSession{
		ID:         id,
		AccountID:  accountID,
		Stake:      decimal.NewFromInt(10),
		CrashPoint: decimal.RequireFromString("2.00"),
		Status:     domain.StatusActive,
		CreatedAt:  createdAt,
	}
}

func TestStore_RollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, err := store.CreateAccount(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, store.UpdateBalance(ctx, 1, decimal.NewFromInt(100)))

	boom := errors.New("boom")
	err = store.Begin(ctx, func(ctx context.Context) error {
		require.NoError(t, store.UpdateBalance(ctx, 1, decimal.NewFromInt(50)))
		_, err := store.InsertEntry(ctx, &domain.LedgerEntry{AccountID: 1, Kind: domain.EntryDebit, Amount: decimal.NewFromInt(50)})
		require.NoError(t, err)
		_, err = store.CreateAccount(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, newSession("s-1", 1, time.Now())))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	account, _ := store.GetAccount(ctx, 1)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
	missing, _ := store.GetAccount(ctx, 2)
	assert.Nil(t, missing)
	session, _ := store.Get(ctx, "s-1")
	assert.Nil(t, session)
	entries, _ := store.ListEntries(ctx, 1, 10)
	assert.Empty(t, entries)
}

func TestStore_NestedBeginJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store := New()

	err := store.Begin(ctx, func(ctx context.Context) error {
		return store.Begin(ctx, func(ctx context.Context) error {
			_, err := store.CreateAccount(ctx, 1)
			return err
		})
	})
	require.NoError(t, err)

	account, _ := store.GetAccount(ctx, 1)
	assert.NotNil(t, account)
}

func TestStore_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	store := New()

	assert.ErrorIs(t, store.UpdateBalance(ctx, 9, decimal.NewFromInt(1)), domain.ErrAccountNotFound)

	_, _ = store.CreateAccount(ctx, 1)
	assert.ErrorIs(t, store.UpdateBalance(ctx, 1, decimal.NewFromInt(-1)), ErrNegativeBalance)
}

func TestStore_Transition(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, _ = store.CreateAccount(ctx, 1)
	require.NoError(t, store.Create(ctx, newSession("s-1", 1, time.Now())))

	multiplier := decimal.RequireFromString("1.50")
	payout := decimal.NewFromInt(15)
	now := time.Now()

	session, err := store.Transition(ctx, "s-1", domain.StatusActive, domain.StatusCashedOut,
		domain.TransitionFields{CashOutMultiplier: &multiplier, Payout: &payout, FinishedAt: now})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCashedOut, session.Status)
	assert.Equal(t, now, *session.FinishedAt)

	_, err = store.Transition(ctx, "s-1", domain.StatusActive, domain.StatusCrashed, domain.TransitionFields{FinishedAt: now})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = store.Transition(ctx, "nope", domain.StatusActive, domain.StatusCrashed, domain.TransitionFields{FinishedAt: now})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := New()
	_, _ = store.CreateAccount(ctx, 1)
	_, _ = store.CreateAccount(ctx, 2)
	base := time.Now()

	require.NoError(t, store.Create(ctx, newSession("a", 1, base)))
	require.NoError(t, store.Create(ctx, newSession("b", 1, base.Add(time.Second))))
	require.NoError(t, store.Create(ctx, newSession("c", 2, base.Add(2*time.Second))))

	multiplier := decimal.RequireFromString("1.75")
	payout := decimal.RequireFromString("17.50")
	_, err := store.Transition(ctx, "a", domain.StatusActive, domain.StatusCashedOut,
		domain.TransitionFields{CashOutMultiplier: &multiplier, Payout: &payout, FinishedAt: base.Add(3 * time.Second)})
	require.NoError(t, err)
	_, err = store.Transition(ctx, "c", domain.StatusActive, domain.StatusCrashed,
		domain.TransitionFields{FinishedAt: base.Add(4 * time.Second)})
	require.NoError(t, err)

	history, _ := store.ListByAccount(ctx, 1, 10)
	require.Len(t, history, 2)
	assert.Equal(t, "b", history[0].ID)

	active, _ := store.FindActive(ctx, 10)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].ID)

	rounds, _ := store.RecentRounds(ctx, 10)
	require.Len(t, rounds, 2)
	assert.Equal(t, "c", rounds[0].SessionID)

	stats, _ := store.StatsByAccount(ctx, 1)
	assert.Equal(t, int64(2), stats.TotalSessions)
	assert.Equal(t, int64(1), stats.TotalWins)
	assert.True(t, stats.TotalWagered.Equal(decimal.NewFromInt(20)))
	assert.True(t, stats.TotalWon.Equal(payout))
	assert.True(t, stats.HighestMultiplier.Equal(multiplier))
}

func TestStore_LedgerAndIssues(t *testing.T) {
	ctx := context.Background()
	store := New()

	for _, e := range []domain.LedgerEntry{
		{AccountID: 1, Kind: domain.EntryCredit, Amount: decimal.NewFromInt(100)},
		{AccountID: 1, Kind: domain.EntryDebit, Amount: decimal.NewFromInt(30)},
		{AccountID: 2, Kind: domain.EntryCredit, Amount: decimal.NewFromInt(5)},
	} {
		e := e
		_, err := store.InsertEntry(ctx, &e)
		require.NoError(t, err)
	}

	credits, debits, err := store.SumEntries(ctx, 1)
	require.NoError(t, err)
	assert.True(t, credits.Equal(decimal.NewFromInt(100)))
	assert.True(t, debits.Equal(decimal.NewFromInt(30)))

	entries, _ := store.ListEntries(ctx, 1, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryDebit, entries[0].Kind)

	require.NoError(t, store.Record(ctx, &domain.ReconciliationIssue{SessionID: "s", AccountID: 1, Error: "x"}))
	issues, _ := store.List(ctx, 10)
	require.Len(t, issues, 1)
	assert.Equal(t, int64(1), issues[0].ID)
}
