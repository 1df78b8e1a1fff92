package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/pkg/workerpool"
)

func runTask(_ context.Context, task workerpool.Task) error {
	return task()
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	pool := NewMockWorkerPoolI(ctrl)

	var sweeps atomic.Int32
	engine.EXPECT().FindActive(gomock.Any(), defaultLimit).
		DoAndReturn(func(context.Context, int) ([]domain.CrashSession, error) {
			sweeps.Add(1)
			return nil, nil
		}).
		MinTimes(2)

	service := New(engine, pool, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- service.Run(ctx) }()

	assert.Eventually(t, func() bool { return sweeps.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestService_sweep(t *testing.T) {
	sessions := []domain.CrashSession{
		{ID: "s-1", Status: domain.StatusActive},
		{ID: "s-2", Status: domain.StatusActive},
	}

	tests := []struct {
		name        string
		prepareMock func(engine *MockEngine, pool *MockWorkerPoolI)
		inflight    []string
	}{
		{
			name: "Recovers every active session",
			prepareMock: func(engine *MockEngine, pool *MockWorkerPoolI) {
				engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(sessions, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runTask).Times(2)
				engine.EXPECT().Recover(gomock.Any(), sessions[0]).Return("resumed", nil)
				engine.EXPECT().Recover(gomock.Any(), sessions[1]).Return("crashed", nil)
			},
		},
		{
			name: "Fetch failure",
			prepareMock: func(engine *MockEngine, pool *MockWorkerPoolI) {
				engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Skips a session still being recovered",
			prepareMock: func(engine *MockEngine, pool *MockWorkerPoolI) {
				engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(sessions, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runTask).Times(1)
				engine.EXPECT().Recover(gomock.Any(), sessions[1]).Return("running", nil)
			},
			inflight: []string{"s-1"},
		},
		{
			name: "Recover failure is not fatal",
			prepareMock: func(engine *MockEngine, pool *MockWorkerPoolI) {
				engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(sessions, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runTask).Times(2)
				engine.EXPECT().Recover(gomock.Any(), sessions[0]).Return("skipped", errors.New("db error"))
				engine.EXPECT().Recover(gomock.Any(), sessions[1]).Return("resumed", nil)
			},
		},
		{
			name: "Pool rejects the task",
			prepareMock: func(engine *MockEngine, pool *MockWorkerPoolI) {
				engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(sessions, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(workerpool.ErrPoolClosed).Times(2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := NewMockEngine(ctrl)
			pool := NewMockWorkerPoolI(ctrl)
			tt.prepareMock(engine, pool)

			service := New(engine, pool, time.Hour)
			for _, id := range tt.inflight {
				service.inflight.Store(id, struct{}{})
			}

			service.sweep(context.Background())

			for _, s := range sessions {
				_, held := service.inflight.Load(s.ID)
				assert.Equal(t, contains(tt.inflight, s.ID), held, s.ID)
			}
		})
	}
}

func TestService_sweepWithPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	pool := workerpool.New(2, 4)
	defer pool.Close()

	sessions := []domain.CrashSession{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	var recovered atomic.Int32
	engine.EXPECT().FindActive(gomock.Any(), defaultLimit).Return(sessions, nil)
	engine.EXPECT().Recover(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.CrashSession) (string, error) {
			recovered.Add(1)
			return "resumed", nil
		}).
		Times(3)

	service := New(engine, pool, time.Hour)
	service.sweep(context.Background())

	assert.Eventually(t, func() bool { return recovered.Load() == 3 }, time.Second, time.Millisecond)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
