package broadcast

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s *Subscription) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("subscription did not end")
			return events
		}
	}
}

type recordingRelay struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingRelay) Publish(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func TestHub_SessionStreamEndsAtTerminal(t *testing.T) {
	hub := NewHub()
	first := hub.SubscribeSession("s-1")
	second := hub.SubscribeSession("s-1")

	hub.Publish(Tick("s-1", 1, decimal.RequireFromString("1.00")))
	hub.Publish(Tick("s-1", 1, decimal.RequireFromString("1.01")))
	hub.Publish(Crashed("s-1", 1, decimal.RequireFromString("1.01")))
	hub.Publish(Tick("s-1", 1, decimal.RequireFromString("1.02")))
	hub.Publish(CashedOut("s-1", 1, decimal.RequireFromString("1.01"), decimal.NewFromInt(10)))

	for _, sub := range []*Subscription{first, second} {
		events := collect(t, sub)
		require.Len(t, events, 3)
		assert.Equal(t, EventTick, events[0].Type)
		assert.True(t, events[1].Multiplier.Equal(decimal.RequireFromString("1.01")))
		assert.Equal(t, EventCrashed, events[2].Type)
	}
}

func TestHub_LateSubscriberGetsTerminalOnly(t *testing.T) {
	hub := NewHub()
	hub.Publish(Tick("s-1", 1, decimal.RequireFromString("1.00")))
	hub.Publish(CashedOut("s-1", 1, decimal.RequireFromString("1.00"), decimal.NewFromInt(5)))

	events := collect(t, hub.SubscribeSession("s-1"))
	require.Len(t, events, 1)
	assert.Equal(t, EventCashedOut, events[0].Type)

	ev, ok := hub.Terminal("s-1")
	assert.True(t, ok)
	assert.Equal(t, EventCashedOut, ev.Type)
}

func TestHub_SlowSubscriberDropsTicksKeepsTerminal(t *testing.T) {
	var mu sync.Mutex
	drops := 0
	hub := NewHub(WithBuffer(2), WithDropHook(func(EventType) {
		mu.Lock()
		drops++
		mu.Unlock()
	}))
	sub := hub.SubscribeSession("s-1")

	for i := 0; i < 10; i++ {
		hub.Publish(Tick("s-1", 1, decimal.NewFromInt(int64(i))))
	}
	hub.Publish(Crashed("s-1", 1, decimal.NewFromInt(9)))

	events := collect(t, sub)
	require.Len(t, events, 2)
	assert.Equal(t, EventTick, events[0].Type)
	assert.Equal(t, EventCrashed, events[1].Type)

	mu.Lock()
	assert.Equal(t, 8, drops)
	mu.Unlock()
}

func TestHub_OrderPreserved(t *testing.T) {
	hub := NewHub(WithBuffer(256))
	sub := hub.SubscribeSession("s-1")

	for i := 0; i < 100; i++ {
		hub.Publish(Tick("s-1", 1, decimal.NewFromInt(int64(i))))
	}
	hub.Publish(Crashed("s-1", 1, decimal.NewFromInt(99)))

	events := collect(t, sub)
	require.Len(t, events, 101)
	for i := 0; i < 100; i++ {
		assert.True(t, events[i].Multiplier.Equal(decimal.NewFromInt(int64(i))))
	}
}

func TestHub_AccountGroup(t *testing.T) {
	relay := &recordingRelay{}
	hub := NewHub(WithRelay(relay))
	account := hub.SubscribeAccount(7)
	other := hub.SubscribeAccount(8)

	hub.Publish(Started("s-1", 7))
	hub.Publish(Tick("s-1", 7, decimal.RequireFromString("1.00")))
	hub.Publish(Crashed("s-1", 7, decimal.RequireFromString("1.00")))
	hub.Publish(Started("s-2", 7))

	account.Close()
	other.Close()
	account.Close()

	events := collect(t, account)
	require.Len(t, events, 3)
	assert.Equal(t, EventStarted, events[0].Type)
	assert.Equal(t, EventCrashed, events[1].Type)
	assert.Equal(t, "s-2", events[2].SessionID)
	assert.Empty(t, collect(t, other))

	relay.mu.Lock()
	assert.Len(t, relay.events, 4)
	relay.mu.Unlock()
}

func TestHub_CloseEndsSubscriptions(t *testing.T) {
	hub := NewHub()
	session := hub.SubscribeSession("s-1")
	account := hub.SubscribeAccount(1)

	hub.Close()

	assert.Empty(t, collect(t, session))
	assert.Empty(t, collect(t, account))
}

func TestHub_RetentionPrunesFinished(t *testing.T) {
	hub := NewHub(WithRetention(0))
	hub.Publish(Crashed("s-1", 1, decimal.NewFromInt(1)))
	time.Sleep(time.Millisecond)
	hub.Publish(Crashed("s-2", 1, decimal.NewFromInt(1)))

	_, ok := hub.Terminal("s-1")
	assert.False(t, ok)
	_, ok = hub.Terminal("s-2")
	assert.True(t, ok)
}

func TestClosed(t *testing.T) {
	sub := Closed(Crashed("s-1", 1, decimal.NewFromInt(2)))
	events := collect(t, sub)
	require.Len(t, events, 1)
	sub.Close()
}
