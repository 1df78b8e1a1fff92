package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/crashbet/pkg/workerpool"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestKafkaPublisher_Write(t *testing.T) {
	tests := []struct {
		name        string
		writerErr   error
		expectedErr bool
	}{
		{name: "Settlement written"},
		{name: "Writer fails", writerErr: errors.New("broker down"), expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWriter{err: tt.writerErr}
			p := NewKafkaPublisher(w, workerpool.New(1, 1))
			defer p.Close()

			payout := decimal.NewFromInt(25)
			err := p.Write(context.Background(), Settlement{
				Type:      SettlementCashedOut,
				SessionID: "s-1",
				AccountID: 1,
				Stake:     decimal.NewFromInt(10),
				Payout:    &payout,
			})
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, w.messages, 1)
			assert.Equal(t, "s-1", string(w.messages[0].Key))

			var got Settlement
			require.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
			assert.Equal(t, SettlementCashedOut, got.Type)
			assert.True(t, got.Payout.Equal(payout))
			assert.NotZero(t, got.TsUnixMs)
		})
	}
}

func TestKafkaPublisher_PublishIsAsync(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, workerpool.New(2, 16))

	for i := 0; i < 5; i++ {
		p.Publish(context.Background(), Settlement{Type: SettlementCrashed, SessionID: "s-1"})
	}
	require.NoError(t, p.Close())

	assert.Len(t, w.messages, 5)
	assert.True(t, w.closed)
}

func TestKafkaPublisher_PublishAfterClose(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, workerpool.New(1, 1))
	require.NoError(t, p.Close())

	p.Publish(context.Background(), Settlement{Type: SettlementCrashed, SessionID: "s-1"})
	assert.Empty(t, w.messages)
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name    string
		brokers string
		want    []string
	}{
		{
			name:    "Single broker",
			brokers: "localhost:9092",
			want:    []string{"localhost:9092"},
		},
		{
			name:    "Several brokers with spaces",
			brokers: "localhost:9092, localhost:9093,",
			want:    []string{"localhost:9092", "localhost:9093"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.brokers, "crash_settlements")
			assert.Equal(t, "crash_settlements", w.Topic)
			assert.IsType(t, &kafka.Hash{}, w.Balancer)

			addr := w.Addr.String()
			for _, broker := range tt.want {
				assert.Contains(t, addr, broker)
			}
			assert.NotContains(t, addr, " ")
		})
	}
}

func TestNop(t *testing.T) {
	Nop{}.Publish(context.Background(), Settlement{})
}
