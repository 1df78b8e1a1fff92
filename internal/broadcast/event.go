package broadcast

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventStarted   EventType = "started"
	EventTick      EventType = "tick"
	EventCrashed   EventType = "crashed"
	EventCashedOut EventType = "cashed_out"
)

// Terminal reports whether the event ends a session stream.
func (t EventType) Terminal() bool {
	return t == EventCrashed || t == EventCashedOut
}

type Event struct {
	Type       EventType        `json:"type"`
	SessionID  string           `json:"session_id"`
	AccountID  int64            `json:"account_id,omitempty"`
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
	CrashPoint *decimal.Decimal `json:"crash_point,omitempty"`
	Payout     *decimal.Decimal `json:"payout,omitempty"`
	At         time.Time        `json:"at"`
}

func Tick(sessionID string, accountID int64, multiplier decimal.Decimal) Event {
	return Event{Type: EventTick, SessionID: sessionID, AccountID: accountID, Multiplier: &multiplier, At: time.Now()}
}

func Started(sessionID string, accountID int64) Event {
	return Event{Type: EventStarted, SessionID: sessionID, AccountID: accountID, At: time.Now()}
}

func Crashed(sessionID string, accountID int64, crashPoint decimal.Decimal) Event {
	return Event{Type: EventCrashed, SessionID: sessionID, AccountID: accountID, CrashPoint: &crashPoint, At: time.Now()}
}

func CashedOut(sessionID string, accountID int64, multiplier, payout decimal.Decimal) Event {
	return Event{Type: EventCashedOut, SessionID: sessionID, AccountID: accountID, Multiplier: &multiplier, Payout: &payout, At: time.Now()}
}
