package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type StartSessionRequestDTO struct {
	Stake      decimal.Decimal `json:"stake" validate:"dgt=0,dplaces=2" swaggertype:"string" example:"10.00"`
	ClientSeed string          `json:"client_seed,omitempty" validate:"max=64" example:"lucky-seed"`
}

type StartSessionResponseDTO struct {
	SessionID      string `json:"session_id" example:"2b1f0a5e-6c1d-4a57-9a53-0d6f3f7f7e11"`
	Commitment     string `json:"commitment" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	NextCommitment string `json:"next_commitment,omitempty" example:"60303ae22b998861bce3b28f33eec1be758a213c86c93c076dbe9f558c11c752"`
}

type CommitmentResponseDTO struct {
	Commitment string `json:"commitment" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

type CashOutRequestDTO struct {
	Multiplier decimal.Decimal `json:"multiplier" validate:"dgte=1,dplaces=2" swaggertype:"string" example:"1.85"`
}

type CashOutResponseDTO struct {
	Multiplier decimal.Decimal `json:"multiplier" swaggertype:"string" example:"1.85"`
	Payout     decimal.Decimal `json:"payout" swaggertype:"string" example:"18.50"`
}

type SessionResponseDTO struct {
	ID                string           `json:"id" example:"2b1f0a5e-6c1d-4a57-9a53-0d6f3f7f7e11"`
	Stake             decimal.Decimal  `json:"stake" swaggertype:"string" example:"10.00"`
	Status            string           `json:"status" example:"CASHED_OUT"`
	CurrentMultiplier *decimal.Decimal `json:"current_multiplier,omitempty" swaggertype:"string" example:"1.42"`
	CrashPoint        *decimal.Decimal `json:"crash_point,omitempty" swaggertype:"string" example:"2.37"`
	CashOutMultiplier *decimal.Decimal `json:"cashout_multiplier,omitempty" swaggertype:"string" example:"1.85"`
	Payout            *decimal.Decimal `json:"payout,omitempty" swaggertype:"string" example:"18.50"`
	Commitment        string           `json:"commitment"`
	ServerSeed        string           `json:"server_seed,omitempty"`
	ClientSeed        string           `json:"client_seed,omitempty"`
	CreatedAt         time.Time        `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
	FinishedAt        *time.Time       `json:"finished_at,omitempty" example:"2026-01-09T16:10:02+03:00"`
}

type StatsResponseDTO struct {
	TotalSessions     int64           `json:"total_sessions" example:"12"`
	TotalWins         int64           `json:"total_wins" example:"5"`
	TotalWagered      decimal.Decimal `json:"total_wagered" swaggertype:"string" example:"120.00"`
	TotalWon          decimal.Decimal `json:"total_won" swaggertype:"string" example:"96.40"`
	HighestMultiplier decimal.Decimal `json:"highest_multiplier" swaggertype:"string" example:"4.10"`
}

type RoundResponseDTO struct {
	SessionID  string          `json:"session_id"`
	CrashPoint decimal.Decimal `json:"crash_point" swaggertype:"string" example:"2.37"`
	Status     string          `json:"status" example:"CRASHED"`
	FinishedAt time.Time       `json:"finished_at"`
}

type VerifyResponseDTO struct {
	CrashPoint decimal.Decimal `json:"crash_point" swaggertype:"string" example:"2.37"`
	ServerSeed string          `json:"server_seed"`
	Commitment string          `json:"commitment"`
	ClientSeed string          `json:"client_seed"`
	Verified   bool            `json:"verified" example:"true"`
}
