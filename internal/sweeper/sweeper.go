package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/pkg/workerpool"
)

const (
	defaultLimit    = 1000
	defaultInterval = 5 * time.Second
)

type Engine interface {
	FindActive(ctx context.Context, limit int) ([]domain.CrashSession, error)
	Recover(ctx context.Context, session domain.CrashSession) (string, error)
}

type WorkerPoolI interface {
	AddTask(ctx context.Context, task workerpool.Task) error
}

// Service periodically hands active sessions without a tick loop back to the engine.
type Service struct {
	engine     Engine
	workerPool WorkerPoolI
	limit      int
	interval   time.Duration
	inflight   sync.Map
}

func New(engine Engine, workerPool WorkerPoolI, interval time.Duration) *Service {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		engine:     engine,
		workerPool: workerPool,
		limit:      defaultLimit,
		interval:   interval,
	}
}

// Run sweeps once right away, then every interval until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	zap.L().Info("session sweeper started", zap.Duration("interval", s.interval))
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping session sweeper")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	sessions, err := s.engine.FindActive(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch active sessions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, session := range sessions {
		if _, loaded := s.inflight.LoadOrStore(session.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inflight.Delete(session.ID)
				return s.recover(ctx, session)
			})
			if err != nil {
				s.inflight.Delete(session.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error sweeping sessions", zap.Error(err))
	}
}

func (s *Service) recover(ctx context.Context, session domain.CrashSession) error {
	action, err := s.engine.Recover(ctx, session)
	if err != nil {
		zap.L().Warn("failed to recover session", zap.String("session_id", session.ID), zap.Error(err))
		return err
	}
	if action != "running" {
		zap.L().Debug("session swept", zap.String("session_id", session.ID), zap.String("action", action))
	}
	return nil
}
