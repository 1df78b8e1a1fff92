package broadcast

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultRelayQueue = 1024

func SessionChannel(sessionID string) string {
	return "crash:session:" + sessionID
}

func AccountChannel(accountID int64) string {
	return "crash:account:" + strconv.FormatInt(accountID, 10)
}

// RedisRelay republishes hub events on Redis pub/sub channels for other processes.
// Events are queued and sent by Run, so Redis latency never reaches the publisher.
type RedisRelay struct {
	client  *redis.Client
	queue   chan Event
	sent    atomic.Int64
	dropped atomic.Int64
}

func NewRedisRelay(client *redis.Client, queueSize int) *RedisRelay {
	if queueSize <= 0 {
		queueSize = DefaultRelayQueue
	}
	return &RedisRelay{
		client: client,
		queue:  make(chan Event, queueSize),
	}
}

func (r *RedisRelay) Publish(ev Event) {
	select {
	case r.queue <- ev:
	default:
		r.dropped.Add(1)
		zap.L().Warn("redis relay queue full, event dropped",
			zap.String("session_id", ev.SessionID), zap.String("type", string(ev.Type)))
	}
}

// Run sends queued events until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-r.queue:
			if err := r.send(ctx, ev); err != nil {
				zap.L().Error("failed to relay event", zap.String("session_id", ev.SessionID), zap.Error(err))
			}
		}
	}
}

func (r *RedisRelay) send(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, SessionChannel(ev.SessionID), string(payload)).Err(); err != nil {
		return err
	}
	if ev.Type != EventTick {
		if err := r.client.Publish(ctx, AccountChannel(ev.AccountID), string(payload)).Err(); err != nil {
			return err
		}
	}
	r.sent.Add(1)
	return nil
}

// Sent is the number of events delivered to Redis.
func (r *RedisRelay) Sent() int64 {
	return r.sent.Load()
}

func (r *RedisRelay) Dropped() int64 {
	return r.dropped.Load()
}
