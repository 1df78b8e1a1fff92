package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/pg"
	"github.com/GlebRadaev/crashbet/internal/repo/memory"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
	return New(repo, txManager), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: dec(s)}
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(dec("0.01")))
	assert.True(t, ValidAmount(dec("100")))
	assert.False(t, ValidAmount(dec("0")))
	assert.False(t, ValidAmount(dec("-5")))
	assert.False(t, ValidAmount(dec("1.001")))
}

func TestDebit(t *testing.T) {
	service, repo := NewMock(t)
	sessionID := "s-1"

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
		balanceAfter  decimal.Decimal
	}{
		{
			name:   "Debit within balance",
			amount: dec("40"),
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("100")}, nil)
				repo.EXPECT().UpdateBalance(gomock.Any(), int64(1), decEq("60")).Return(nil)
				repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						e.ID = 1
						return e, nil
					})
			},
			balanceAfter: dec("60"),
		},
		{
			name:   "Debit of the whole balance",
			amount: dec("100"),
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("100")}, nil)
				repo.EXPECT().UpdateBalance(gomock.Any(), int64(1), decEq("0")).Return(nil)
				repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						return e, nil
					})
			},
			balanceAfter: dec("0"),
		},
		{
			name:   "Insufficient funds",
			amount: dec("100.01"),
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("100")}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "Zero amount",
			amount:        dec("0"),
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Too many decimal places",
			amount:        dec("0.001"),
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Unknown account",
			amount: dec("1"),
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:   "Entry insert fails",
			amount: dec("1"),
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("100")}, nil)
				repo.EXPECT().UpdateBalance(gomock.Any(), int64(1), decEq("99")).Return(nil)
				repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entry, err := service.Debit(context.Background(), 1, tt.amount, domain.ReasonBet, &sessionID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.EntryDebit, entry.Kind)
			assert.Equal(t, domain.ReasonBet, entry.Reason)
			assert.True(t, entry.Amount.Equal(tt.amount))
			assert.True(t, entry.BalanceAfter.Equal(tt.balanceAfter))
			assert.Equal(t, &sessionID, entry.SessionID)
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().LockAccount(gomock.Any(), int64(2)).Return(&domain.Account{ID: 2, Balance: dec("10")}, nil)
	repo.EXPECT().UpdateBalance(gomock.Any(), int64(2), decEq("35.5")).Return(nil)
	repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			return e, nil
		})

	entry, err := service.Credit(context.Background(), 2, dec("25.50"), domain.ReasonPayout, nil)
	assert.NoError(t, err)
	assert.Equal(t, domain.EntryCredit, entry.Kind)
	assert.True(t, entry.BalanceAfter.Equal(dec("35.50")))
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Account
		expectedError error
	}{
		{
			name: "Account found",
			prepareMock: func() {
				repo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("5")}, nil)
			},
			expected: &domain.Account{ID: 1, Balance: dec("5")},
		},
		{
			name: "Account missing",
			prepareMock: func() {
				repo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			account, err := service.GetBalance(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, account)
		})
	}
}

func TestGetEntries(t *testing.T) {
	service, repo := NewMock(t)
	entries := []domain.LedgerEntry{{ID: 1, AccountID: 1, Kind: domain.EntryDebit, Amount: dec("1")}}

	repo.EXPECT().ListEntries(gomock.Any(), int64(1), 50).Return(entries, nil)
	result, err := service.GetEntries(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, entries, result)

	repo.EXPECT().ListEntries(gomock.Any(), int64(1), 50).Return(nil, errors.New("db error"))
	_, err = service.GetEntries(context.Background(), 1, 50)
	assert.Error(t, err)
}

func TestReconcile(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Balance matches ledger",
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("70")}, nil)
				repo.EXPECT().SumEntries(gomock.Any(), int64(1)).Return(dec("100"), dec("30"), nil)
			},
		},
		{
			name: "Balance drifted",
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(&domain.Account{ID: 1, Balance: dec("71")}, nil)
				repo.EXPECT().SumEntries(gomock.Any(), int64(1)).Return(dec("100"), dec("30"), nil)
			},
			expectedError: ErrLedgerMismatch,
		},
		{
			name: "Account missing",
			prepareMock: func() {
				repo.EXPECT().LockAccount(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Reconcile(context.Background(), 1)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestOpenAccount(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("New account gets opening deposit", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().GetAccount(gomock.Any(), int64(3)).Return(nil, nil),
			repo.EXPECT().CreateAccount(gomock.Any(), int64(3)).Return(&domain.Account{ID: 3}, nil),
			repo.EXPECT().LockAccount(gomock.Any(), int64(3)).Return(&domain.Account{ID: 3}, nil),
			repo.EXPECT().UpdateBalance(gomock.Any(), int64(3), decEq("500")).Return(nil),
			repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
					assert.Equal(t, domain.ReasonDeposit, e.Reason)
					return e, nil
				}),
			repo.EXPECT().GetAccount(gomock.Any(), int64(3)).Return(&domain.Account{ID: 3, Balance: dec("500")}, nil),
		)

		account, err := service.OpenAccount(context.Background(), 3, dec("500"))
		assert.NoError(t, err)
		assert.True(t, account.Balance.Equal(dec("500")))
	})

	t.Run("Existing account is left alone", func(t *testing.T) {
		repo.EXPECT().GetAccount(gomock.Any(), int64(4)).Return(&domain.Account{ID: 4, Balance: dec("1")}, nil)

		account, err := service.OpenAccount(context.Background(), 4, dec("500"))
		assert.NoError(t, err)
		assert.True(t, account.Balance.Equal(dec("1")))
	})
}

func TestDebit_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	store := memory.New()
	service := New(store, store)
	ctx := context.Background()
	_, err := service.OpenAccount(ctx, 1, dec("100"))
	require.NoError(t, err)

	const attempts = 40
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Debit(ctx, 1, dec("10"), domain.ReasonBet, nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok, insufficient := 0, 0
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInsufficientFunds):
			insufficient++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 10, ok)
	assert.Equal(t, attempts-10, insufficient)

	account, err := service.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero(), "balance %s", account.Balance)

	entries, err := service.GetEntries(ctx, 1, 100)
	require.NoError(t, err)
	assert.Len(t, entries, 11)
	assert.NoError(t, service.Reconcile(ctx, 1))
}
