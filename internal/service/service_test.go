package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/fairness"
	"github.com/GlebRadaev/crashbet/internal/metrics"
	"github.com/GlebRadaev/crashbet/internal/repo"
	"github.com/GlebRadaev/crashbet/internal/repo/memory"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
)

func TestNew(t *testing.T) {
	repos := repo.NewMemory(memory.New())

	services := New(repos, Deps{
		Generator: fairness.NewGenerator(fairness.DefaultHouseEdge, fairness.DefaultMax),
		Hub:       broadcast.NewHub(),
		Metrics:   metrics.New(prometheus.NewRegistry()),
		Engine:    crashservice.Config{TickInterval: time.Hour},
	})
	defer services.CrashService.Shutdown()

	require.NotNil(t, services.LedgerService)
	require.NotNil(t, services.CrashService)

	ctx := context.Background()
	_, err := services.LedgerService.OpenAccount(ctx, 1, decimal.NewFromInt(50))
	require.NoError(t, err)

	res, err := services.CrashService.Start(ctx, 1, decimal.NewFromInt(5), "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Commitment)

	account, err := services.LedgerService.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(45)))
}
