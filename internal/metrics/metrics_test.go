package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionStarted(decimal.NewFromInt(10))
	m.SessionStarted(decimal.RequireFromString("2.50"))
	m.SessionResolved("cashed_out", decimal.NewFromInt(25))
	m.SessionResolved("crashed", decimal.Zero)
	m.CashOutRejected("invalid_multiplier")
	m.ReconciliationError()
	m.LoopStarted()
	m.LoopStarted()
	m.LoopStopped()
	m.BroadcastDropped("tick")
	m.SessionRecovered("crashed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsStarted))
	assert.Equal(t, 12.5, testutil.ToFloat64(m.stakeTotal))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.payoutTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsResolved.WithLabelValues("crashed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconciliation))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.broadcastDropped.WithLabelValues("tick")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionStarted(decimal.NewFromInt(10))
		m.SessionResolved("cashed_out", decimal.NewFromInt(25))
		m.CashOutRejected("invalid_multiplier")
		m.ReconciliationError()
		m.LoopStarted()
		m.LoopStopped()
		m.BroadcastDropped("tick")
		m.SessionRecovered("crashed")
	})
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.SessionStarted(decimal.NewFromInt(1))

	tests := []struct {
		name         string
		path         string
		health       HealthFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Metrics exposed",
			path:         "/metrics",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: "crashbet_sessions_started_total 1",
		},
		{
			name:         "Healthy store",
			path:         "/healthz",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name:         "Unhealthy store",
			path:         "/healthz",
			health:       func(context.Context) error { return errors.New("db down") },
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "unhealthy: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Router(reg, tt.health).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.expectedBody), rec.Body.String())
		})
	}
}
