package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "crashbet"

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	sessionsStarted  prometheus.Counter
	sessionsResolved *prometheus.CounterVec
	cashOutRejected  *prometheus.CounterVec
	stakeTotal       prometheus.Counter
	payoutTotal      prometheus.Counter
	reconciliation   prometheus.Counter
	activeSessions   prometheus.Gauge
	broadcastDropped *prometheus.CounterVec
	recovered        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Crash sessions started.",
		}),
		sessionsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_resolved_total",
			Help:      "Crash sessions resolved, by outcome.",
		}, []string{"outcome"}),
		cashOutRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cashout_rejected_total",
			Help:      "Cash-out requests rejected, by reason.",
		}, []string{"reason"}),
		stakeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stake_amount_total",
			Help:      "Sum of stakes debited.",
		}),
		payoutTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_amount_total",
			Help:      "Sum of payouts credited.",
		}),
		reconciliation: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_errors_total",
			Help:      "Resolved sessions whose payout could not be credited.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions with a running tick loop.",
		}),
		broadcastDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_dropped_total",
			Help:      "Events a slow subscriber could not take, by event type.",
		}, []string{"type"}),
		recovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_recovered_total",
			Help:      "Orphaned active sessions picked up by the sweeper, by action.",
		}, []string{"action"}),
	}

	reg.MustRegister(
		m.sessionsStarted,
		m.sessionsResolved,
		m.cashOutRejected,
		m.stakeTotal,
		m.payoutTotal,
		m.reconciliation,
		m.activeSessions,
		m.broadcastDropped,
		m.recovered,
	)
	return m
}

func (m *Metrics) SessionStarted(stake decimal.Decimal) {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
	m.stakeTotal.Add(stake.InexactFloat64())
}

func (m *Metrics) SessionResolved(outcome string, payout decimal.Decimal) {
	if m == nil {
		return
	}
	m.sessionsResolved.WithLabelValues(outcome).Inc()
	if payout.IsPositive() {
		m.payoutTotal.Add(payout.InexactFloat64())
	}
}

func (m *Metrics) CashOutRejected(reason string) {
	if m == nil {
		return
	}
	m.cashOutRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ReconciliationError() {
	if m == nil {
		return
	}
	m.reconciliation.Inc()
}

func (m *Metrics) LoopStarted() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) LoopStopped() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) BroadcastDropped(eventType string) {
	if m == nil {
		return
	}
	m.broadcastDropped.WithLabelValues(eventType).Inc()
}

func (m *Metrics) SessionRecovered(action string) {
	if m == nil {
		return
	}
	m.recovered.WithLabelValues(action).Inc()
}
