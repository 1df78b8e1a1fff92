package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"500.50"`
}

type LedgerEntryResponseDTO struct {
	ID           int64           `json:"id" example:"17"`
	Kind         string          `json:"kind" example:"debit"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"10.00"`
	Reason       string          `json:"reason" example:"bet"`
	SessionID    *string         `json:"session_id,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after" swaggertype:"string" example:"490.50"`
	CreatedAt    time.Time       `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
}
