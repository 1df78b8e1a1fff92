package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettlementType string

const (
	SettlementBetPlaced      SettlementType = "bet_placed"
	SettlementCashedOut      SettlementType = "cashed_out"
	SettlementCrashed        SettlementType = "crashed"
	SettlementReconciliation SettlementType = "reconciliation"
)

// Settlement is the audit record of one money-relevant step of a crash session.
type Settlement struct {
	Type       SettlementType   `json:"type"`
	SessionID  string           `json:"session_id"`
	AccountID  int64            `json:"account_id"`
	Stake      decimal.Decimal  `json:"stake"`
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
	Payout     *decimal.Decimal `json:"payout,omitempty"`
	CrashPoint *decimal.Decimal `json:"crash_point,omitempty"`
	ServerSeed string           `json:"server_seed,omitempty"`
	Commitment string           `json:"commitment"`
	ClientSeed string           `json:"client_seed,omitempty"`
	Error      string           `json:"error,omitempty"`
	TsUnixMs   int64            `json:"ts_unix_ms"`
}

func (s *Settlement) stamp() {
	if s.TsUnixMs == 0 {
		s.TsUnixMs = time.Now().UnixMilli()
	}
}
