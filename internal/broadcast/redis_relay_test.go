package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, ev Event) string {
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return string(b)
}

func TestRedisRelay_Send(t *testing.T) {
	db, mock := redismock.NewClientMock()
	relay := NewRedisRelay(db, 4)

	tick := Tick("s-1", 3, decimal.RequireFromString("1.10"))
	crashed := Crashed("s-1", 3, decimal.RequireFromString("1.10"))

	mock.ExpectPublish(SessionChannel("s-1"), payload(t, tick)).SetVal(1)
	mock.ExpectPublish(SessionChannel("s-1"), payload(t, crashed)).SetVal(1)
	mock.ExpectPublish(AccountChannel(3), payload(t, crashed)).SetVal(0)

	require.NoError(t, relay.send(context.Background(), tick))
	require.NoError(t, relay.send(context.Background(), crashed))
	assert.Equal(t, int64(2), relay.Sent())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRelay_SendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	relay := NewRedisRelay(db, 4)
	tick := Tick("s-1", 3, decimal.RequireFromString("1.10"))

	mock.ExpectPublish(SessionChannel("s-1"), payload(t, tick)).SetErr(errors.New("redis down"))

	assert.Error(t, relay.send(context.Background(), tick))
	assert.Equal(t, int64(0), relay.Sent())
}

func TestRedisRelay_Run(t *testing.T) {
	db, mock := redismock.NewClientMock()
	relay := NewRedisRelay(db, 4)
	tick := Tick("s-9", 1, decimal.RequireFromString("1.00"))
	mock.ExpectPublish(SessionChannel("s-9"), payload(t, tick)).SetVal(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = relay.Run(ctx)
		close(done)
	}()

	relay.Publish(tick)
	assert.Eventually(t, func() bool { return relay.Sent() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRelay_QueueFull(t *testing.T) {
	db, _ := redismock.NewClientMock()
	relay := NewRedisRelay(db, 1)

	relay.Publish(Started("s-1", 1))
	relay.Publish(Started("s-2", 1))

	assert.Equal(t, int64(1), relay.Dropped())
}

func TestChannels(t *testing.T) {
	assert.Equal(t, "crash:session:abc", SessionChannel("abc"))
	assert.Equal(t, "crash:account:42", AccountChannel(42))
}
