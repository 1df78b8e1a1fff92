package reconciliationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/crashbet/internal/domain"
)

func TestRepository_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO reconciliation_issues (session_id, account_id, amount, reason, error)`)

	issue := &domain.ReconciliationIssue{
		SessionID: "s-1",
		AccountID: 1,
		Amount:    decimal.RequireFromString("25"),
		Reason:    domain.ReasonPayout,
		Error:     "ledger unavailable",
	}

	mock.ExpectQuery(query).
		WithArgs(issue.SessionID, issue.AccountID, issue.Amount, issue.Reason, issue.Error).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
	assert.NoError(t, repo.Record(context.Background(), issue))
	assert.Equal(t, int64(3), issue.ID)
	assert.Equal(t, now, issue.CreatedAt)

	mock.ExpectQuery(query).
		WithArgs(issue.SessionID, issue.AccountID, issue.Amount, issue.Reason, issue.Error).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Record(context.Background(), issue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM reconciliation_issues ORDER BY id DESC LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "session_id", "account_id", "amount", "reason", "error", "created_at"}).
			AddRow(int64(1), "s-1", int64(1), decimal.RequireFromString("25"), domain.ReasonPayout, "boom", now))

	issues, err := repo.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, issues, 1)
	assert.Equal(t, "boom", issues[0].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
