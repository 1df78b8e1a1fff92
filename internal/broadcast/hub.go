// Package broadcast fans session events out to in-process subscribers and an optional relay.
package broadcast

import (
	"sync"
	"time"
)

const (
	DefaultBuffer    = 64
	DefaultRetention = 5 * time.Minute
)

// Relay forwards events outside the process. Publish must not block.
type Relay interface {
	Publish(ev Event)
}

type finished struct {
	event Event
	at    time.Time
}

// Hub delivers events per session and per account.
//
// Publish never blocks: a subscriber whose buffer is full loses ticks, while a terminal
// event evicts the oldest queued tick. Once a session's terminal event is published the
// session is sealed and later events for it are discarded.
type Hub struct {
	mu        sync.Mutex
	buffer    int
	retention time.Duration
	relay     Relay
	onDrop    func(EventType)
	sessions  map[string]map[*Subscription]struct{}
	accounts  map[int64]map[*Subscription]struct{}
	finished  map[string]finished
}

type Option func(*Hub)

func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

// WithRetention sets how long a finished session's terminal event is kept for late subscribers.
func WithRetention(d time.Duration) Option {
	return func(h *Hub) {
		h.retention = d
	}
}

func WithRelay(r Relay) Option {
	return func(h *Hub) {
		h.relay = r
	}
}

// WithDropHook is called for every event a subscriber could not take.
func WithDropHook(fn func(EventType)) Option {
	return func(h *Hub) {
		h.onDrop = fn
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		buffer:    DefaultBuffer,
		retention: DefaultRetention,
		sessions:  make(map[string]map[*Subscription]struct{}),
		accounts:  make(map[int64]map[*Subscription]struct{}),
		finished:  make(map[string]finished),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type Subscription struct {
	ch        chan Event
	hub       *Hub
	sessionID string
	accountID int64
	closed    bool
}

// Events is closed after the terminal event for session subscriptions, and on Close.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

func (s *Subscription) Close() {
	if s.hub == nil {
		return
	}
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	s.hub.detach(s)
}

// Closed returns a subscription that yields ev and ends. It serves sessions that finished
// before anyone subscribed.
func Closed(ev Event) *Subscription {
	s := &Subscription{ch: make(chan Event, 1), sessionID: ev.SessionID, closed: true}
	s.ch <- ev
	close(s.ch)
	return s
}

func (h *Hub) SubscribeSession(sessionID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.finished[sessionID]; ok {
		return Closed(f.event)
	}

	s := &Subscription{ch: make(chan Event, h.buffer), hub: h, sessionID: sessionID}
	set, ok := h.sessions[sessionID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.sessions[sessionID] = set
	}
	set[s] = struct{}{}
	return s
}

// SubscribeAccount receives started and terminal events of every session of the account.
func (h *Hub) SubscribeAccount(accountID int64) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &Subscription{ch: make(chan Event, h.buffer), hub: h, accountID: accountID}
	set, ok := h.accounts[accountID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.accounts[accountID] = set
	}
	set[s] = struct{}{}
	return s
}

// Terminal returns the retained terminal event of a finished session.
func (h *Hub) Terminal(sessionID string) (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.finished[sessionID]
	return f.event, ok
}

func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, sealed := h.finished[ev.SessionID]; sealed {
		return
	}

	for s := range h.sessions[ev.SessionID] {
		h.deliver(s, ev)
	}

	if ev.Type != EventTick {
		for s := range h.accounts[ev.AccountID] {
			h.deliver(s, ev)
		}
	}

	if ev.Type.Terminal() {
		for s := range h.sessions[ev.SessionID] {
			h.detach(s)
		}
		now := time.Now()
		h.prune(now)
		h.finished[ev.SessionID] = finished{event: ev, at: now}
	}

	if h.relay != nil {
		h.relay.Publish(ev)
	}
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.sessions {
		for s := range set {
			h.detach(s)
		}
	}
	for _, set := range h.accounts {
		for s := range set {
			h.detach(s)
		}
	}
}

// deliver must be called with h.mu held; the hub is the only sender on s.ch.
func (h *Hub) deliver(s *Subscription, ev Event) {
	select {
	case s.ch <- ev:
		return
	default:
	}

	if ev.Type.Terminal() && s.sessionID != "" {
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- ev:
			return
		default:
		}
	}

	if h.onDrop != nil {
		h.onDrop(ev.Type)
	}
}

func (h *Hub) detach(s *Subscription) {
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)

	if s.sessionID != "" {
		if set, ok := h.sessions[s.sessionID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(h.sessions, s.sessionID)
			}
		}
		return
	}
	if set, ok := h.accounts[s.accountID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(h.accounts, s.accountID)
		}
	}
}

func (h *Hub) prune(now time.Time) {
	for id, f := range h.finished {
		if now.Sub(f.at) > h.retention {
			delete(h.finished, id)
		}
	}
}
