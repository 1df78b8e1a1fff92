package account

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/dto"
	"github.com/GlebRadaev/crashbet/pkg/auth"
	"github.com/GlebRadaev/crashbet/pkg/utils"
)

const (
	defaultLedgerLimit = 50
	maxLedgerLimit     = 500
)

type Service interface {
	GetBalance(ctx context.Context, accountID int64) (*domain.Account, error)
	GetEntries(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error)
}

type AccountHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/account/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	account, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: account.Balance})
}

// GetLedger godoc
//
//	@Summary		List ledger entries
//	@Description	Debits and credits of the authenticated account, newest first.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"At most 500, default 50"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO	"Ledger entries"
//	@Success		204		{object}	utils.Response				"No entries"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/account/ledger [get]
func (h *AccountHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLedgerLimit
	}
	limit = min(limit, maxLedgerLimit)

	entries, err := h.ledgerService.GetEntries(r.Context(), accountID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger entries")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Ledger entries not found")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			ID:           e.ID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			Reason:       string(e.Reason),
			SessionID:    e.SessionID,
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
