package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/pkg/workerpool"
)

const writeTimeout = 5 * time.Second

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewWriter builds a writer for a comma separated broker list.
func NewWriter(brokers string, topic string) *kafka.Writer {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher writes settlements keyed by session id, so one session's records stay ordered
// within a partition. Publish hands the write to the worker pool and returns immediately.
type KafkaPublisher struct {
	writer Writer
	pool   *workerpool.WorkerPool
}

func NewKafkaPublisher(w Writer, pool *workerpool.WorkerPool) *KafkaPublisher {
	return &KafkaPublisher{writer: w, pool: pool}
}

func (p *KafkaPublisher) Publish(_ context.Context, s Settlement) {
	s.stamp()
	err := p.pool.TryAddTask(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return p.Write(ctx, s)
	})
	if err != nil {
		zap.L().Warn("settlement not queued",
			zap.String("session_id", s.SessionID),
			zap.String("type", string(s.Type)),
			zap.Error(err))
	}
}

// Write sends one settlement synchronously.
func (p *KafkaPublisher) Write(ctx context.Context, s Settlement) error {
	s.stamp()
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settlement: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(s.SessionID),
		Value: b,
		Time:  time.UnixMilli(s.TsUnixMs),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write settlement %s/%s: %w", s.SessionID, s.Type, err)
	}
	return nil
}

// Close drains queued settlements and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.pool.Close()
	return p.writer.Close()
}

// Nop discards settlements. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Settlement) {}
