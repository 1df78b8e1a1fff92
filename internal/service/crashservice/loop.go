package crashservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/events"
)

const crashTimeout = 5 * time.Second

// Recovery actions reported by Recover.
const (
	RecoverRunning = "running"
	RecoverCrashed = "crashed"
	RecoverResumed = "resumed"
	RecoverSkipped = "skipped"
)

func (s *Service) startLoop(session domain.CrashSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, running := s.loops[session.ID]; running {
		return false
	}

	ctx, cancel := context.WithCancel(s.baseCtx)
	s.loops[session.ID] = cancel
	s.wg.Add(1)
	s.metrics.LoopStarted()

	go func() {
		defer s.wg.Done()
		defer s.metrics.LoopStopped()
		defer s.stopLoop(session.ID)
		s.run(ctx, session)
	}()
	return true
}

func (s *Service) stopLoop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.loops[sessionID]; ok {
		cancel()
		delete(s.loops, sessionID)
	}
}

func (s *Service) running(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loops[sessionID]
	return ok
}

// run publishes the multiplier every interval, starting from where the session clock is,
// until the crash point is published. It then attempts the auto-crash.
func (s *Service) run(ctx context.Context, session domain.CrashSession) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	n := s.tickIndex(&session)
	for {
		m := s.multiplierAt(n, session.CrashPoint)
		s.hub.Publish(broadcast.Tick(session.ID, session.AccountID, m))

		if m.GreaterThanOrEqual(session.CrashPoint) {
			if ctx.Err() == nil {
				s.crash(session)
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n = max(n+1, s.tickIndex(&session))
		}
	}
}

// crash moves the session to CRASHED unless a cash-out already resolved it.
func (s *Service) crash(session domain.CrashSession) bool {
	ctx, cancel := context.WithTimeout(context.Background(), crashTimeout)
	defer cancel()

	resolved, err := s.sessions.Transition(ctx, session.ID, domain.StatusActive, domain.StatusCrashed, domain.TransitionFields{
		FinishedAt: s.now(),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		zap.L().Debug("session resolved before crash", zap.String("session_id", session.ID))
		return false
	}
	if err != nil {
		zap.L().Error("failed to crash session", zap.String("session_id", session.ID), zap.Error(err))
		return false
	}

	zap.L().Info("crash session crashed",
		zap.String("session_id", session.ID),
		zap.String("crash_point", resolved.CrashPoint.String()))
	s.metrics.SessionResolved(string(domain.StatusCrashed), decimal.Zero)
	s.audit.Publish(ctx, events.Settlement{
		Type:       events.SettlementCrashed,
		SessionID:  resolved.ID,
		AccountID:  resolved.AccountID,
		Stake:      resolved.Stake,
		CrashPoint: &resolved.CrashPoint,
		ServerSeed: resolved.ServerSeed,
		Commitment: resolved.Commitment,
		ClientSeed: resolved.ClientSeed,
	})
	s.hub.Publish(broadcast.Crashed(resolved.ID, resolved.AccountID, resolved.CrashPoint))
	return true
}

// crashTime is when the session's tick loop publishes the crash point.
func (s *Service) crashTime(session *domain.CrashSession) time.Time {
	ticks := session.CrashPoint.Sub(one).Div(s.step).Ceil().IntPart()
	return session.CreatedAt.Add(time.Duration(ticks) * s.interval)
}

// Recover takes over an active session that has no tick loop in this process, which happens
// after a restart. A session past its crash time is crashed, otherwise its loop resumes.
func (s *Service) Recover(ctx context.Context, session domain.CrashSession) (string, error) {
	if session.Status != domain.StatusActive {
		return RecoverSkipped, nil
	}
	if s.running(session.ID) {
		return RecoverRunning, nil
	}
	if err := ctx.Err(); err != nil {
		return RecoverSkipped, err
	}

	if !s.now().Before(s.crashTime(&session)) {
		if s.crash(session) {
			s.metrics.SessionRecovered(RecoverCrashed)
			return RecoverCrashed, nil
		}
		return RecoverSkipped, nil
	}

	if !s.startLoop(session) {
		return RecoverRunning, nil
	}
	s.metrics.SessionRecovered(RecoverResumed)
	zap.L().Info("crash session loop resumed", zap.String("session_id", session.ID))
	return RecoverResumed, nil
}

// FindActive lists active sessions for recovery.
func (s *Service) FindActive(ctx context.Context, limit int) ([]domain.CrashSession, error) {
	return s.sessions.FindActive(ctx, limit)
}

// Shutdown stops every tick loop and waits for them to exit. Sessions stay ACTIVE and are
// recovered on the next start.
func (s *Service) Shutdown() {
	s.mu.Lock()
	s.closed = true
	s.stop()
	s.mu.Unlock()

	s.wg.Wait()
}
