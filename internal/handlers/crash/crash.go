package crash

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/dto"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
	"github.com/GlebRadaev/crashbet/pkg/auth"
	"github.com/GlebRadaev/crashbet/pkg/utils"
	"github.com/GlebRadaev/crashbet/pkg/validate"
)

type Service interface {
	Start(ctx context.Context, accountID int64, stake decimal.Decimal, clientSeed string) (*crashservice.StartResult, error)
	CashOut(ctx context.Context, sessionID string, accountID int64, multiplier decimal.Decimal) (*crashservice.CashOutResult, error)
	Get(ctx context.Context, sessionID string, accountID int64) (*crashservice.SessionView, error)
	History(ctx context.Context, accountID int64) ([]domain.CrashSession, error)
	Stats(ctx context.Context, accountID int64) (*domain.AccountStats, error)
	RecentRounds(ctx context.Context, limit int) ([]domain.RoundSummary, error)
	Verify(ctx context.Context, sessionID string, accountID int64) (*crashservice.VerifyResult, error)
	NextCommitment(ctx context.Context, accountID int64) (string, error)
}

type CrashHandler struct {
	crashService Service
}

func New(crashService Service) *CrashHandler {
	return &CrashHandler{
		crashService: crashService,
	}
}

// StartSession godoc
//
//	@Summary		Start a crash session
//	@Description	Debit the stake and start a session. The response carries the commitment to the hidden crash point.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartSessionRequestDTO	true	"Stake and optional client seed"
//	@Success		201		{object}	dto.StartSessionResponseDTO	"Session started"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/crash/sessions [post]
func (h *CrashHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	var req dto.StartSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusUnprocessableEntity, crashservice.ErrInvalidAmount.Error(), validate.Details(err))
		return
	}

	res, err := h.crashService.Start(r.Context(), accountID, req.Stake, req.ClientSeed)
	if err != nil {
		switch {
		case errors.Is(err, crashservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, crashservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.StartSessionResponseDTO{
		SessionID:      res.SessionID,
		Commitment:     res.Commitment,
		NextCommitment: res.NextCommitment,
	})
}

// GetCommitment godoc
//
//	@Summary		Commitment for the next session
//	@Description	SHA-256 of the server seed the caller's next session will use. Pick the client seed after reading it.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CommitmentResponseDTO	"Pending commitment"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/crash/commitment [get]
func (h *CrashHandler) GetCommitment(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	commitment, err := h.crashService.NextCommitment(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CommitmentResponseDTO{Commitment: commitment})
}

// CashOut godoc
//
//	@Summary		Cash out a session
//	@Description	Settle an active session at a multiplier it has already reached. A tie with the crash point wins.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Session ID"
//	@Param			request	body		dto.CashOutRequestDTO	true	"Requested multiplier"
//	@Success		200		{object}	dto.CashOutResponseDTO	"Payout credited"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Session not found"
//	@Failure		409		{object}	utils.Response			"Session already resolved"
//	@Failure		422		{object}	utils.Response			"Invalid multiplier"
//	@Failure		500		{object}	utils.Response			"Payout pending reconciliation"
//	@Router			/api/crash/sessions/{id}/cashout [post]
func (h *CrashHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)
	sessionID := chi.URLParam(r, "id")

	var req dto.CashOutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDetails(w, http.StatusUnprocessableEntity, crashservice.ErrInvalidMultiplier.Error(), validate.Details(err))
		return
	}

	res, err := h.crashService.CashOut(r.Context(), sessionID, accountID, req.Multiplier)
	if err != nil {
		switch {
		case errors.Is(err, crashservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, crashservice.ErrInvalidMultiplier):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, crashservice.ErrSessionAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, crashservice.ErrReconciliation):
			utils.RespondWithError(w, http.StatusInternalServerError, crashservice.ErrReconciliation.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CashOutResponseDTO{
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
	})
}

// GetSession godoc
//
//	@Summary		Get a session
//	@Description	The crash point and server seed are revealed once the session is resolved.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session ID"
//	@Success		200	{object}	dto.SessionResponseDTO	"Session"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/crash/sessions/{id} [get]
func (h *CrashHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	view, err := h.crashService.Get(r.Context(), chi.URLParam(r, "id"), accountID)
	if err != nil {
		if errors.Is(err, crashservice.ErrSessionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := toSessionDTO(view.CrashSession)
	resp.CurrentMultiplier = view.CurrentMultiplier
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
//
//	@Summary		List own sessions
//	@Description	Latest sessions of the authenticated account, newest first.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SessionResponseDTO	"Sessions"
//	@Success		204	{object}	utils.Response			"No sessions"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/crash/sessions [get]
func (h *CrashHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	sessions, err := h.crashService.History(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sessions")
		return
	}
	if len(sessions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Sessions not found")
		return
	}

	response := make([]dto.SessionResponseDTO, len(sessions))
	for i, s := range sessions {
		response[i] = toSessionDTO(s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get own crash stats
//	@Tags			Crash
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO	"Stats"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/crash/stats [get]
func (h *CrashHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	stats, err := h.crashService.Stats(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalSessions:     stats.TotalSessions,
		TotalWins:         stats.TotalWins,
		TotalWagered:      stats.TotalWagered,
		TotalWon:          stats.TotalWon,
		HighestMultiplier: stats.HighestMultiplier,
	})
}

// GetRounds godoc
//
//	@Summary		Recent crash points
//	@Description	Crash points of the latest resolved sessions across all accounts.
//	@Tags			Crash
//	@Produce		json
//	@Param			limit	query		int						false	"At most 50"
//	@Success		200		{array}		dto.RoundResponseDTO	"Rounds"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/crash/rounds [get]
func (h *CrashHandler) GetRounds(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rounds, err := h.crashService.RecentRounds(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RoundResponseDTO, len(rounds))
	for i, round := range rounds {
		response[i] = dto.RoundResponseDTO{
			SessionID:  round.SessionID,
			CrashPoint: round.CrashPoint,
			Status:     string(round.Status),
			FinishedAt: round.FinishedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// VerifySession godoc
//
//	@Summary		Verify a resolved session
//	@Description	Recompute the crash point from the revealed server seed and check it against the commitment.
//	@Tags			Crash
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session ID"
//	@Success		200	{object}	dto.VerifyResponseDTO	"Verification"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session is still active"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/crash/sessions/{id}/verify [get]
func (h *CrashHandler) VerifySession(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	res, err := h.crashService.Verify(r.Context(), chi.URLParam(r, "id"), accountID)
	if err != nil {
		switch {
		case errors.Is(err, crashservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, crashservice.ErrSessionActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		CrashPoint: res.CrashPoint,
		ServerSeed: res.ServerSeed,
		Commitment: res.Commitment,
		ClientSeed: res.ClientSeed,
		Verified:   res.Verified,
	})
}

func toSessionDTO(s domain.CrashSession) dto.SessionResponseDTO {
	resp := dto.SessionResponseDTO{
		ID:                s.ID,
		Stake:             s.Stake,
		Status:            string(s.Status),
		CashOutMultiplier: s.CashOutMultiplier,
		Payout:            s.Payout,
		Commitment:        s.Commitment,
		ServerSeed:        s.ServerSeed,
		ClientSeed:        s.ClientSeed,
		CreatedAt:         s.CreatedAt,
		FinishedAt:        s.FinishedAt,
	}
	if s.Status.Terminal() {
		point := s.CrashPoint
		resp.CrashPoint = &point
	}
	return resp
}
