package stream

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
	"github.com/GlebRadaev/crashbet/pkg/auth"
	"github.com/GlebRadaev/crashbet/pkg/utils"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Service interface {
	Subscribe(ctx context.Context, sessionID string) (*broadcast.Subscription, error)
	SubscribeAccount(accountID int64) *broadcast.Subscription
}

type StreamHandler struct {
	streamService Service
	upgrader      websocket.Upgrader
}

// New accepts connections whose origin passes allowOrigin; nil keeps the same-origin check.
func New(streamService Service, allowOrigin func(r *http.Request) bool) *StreamHandler {
	return &StreamHandler{
		streamService: streamService,
		upgrader:      websocket.Upgrader{CheckOrigin: allowOrigin},
	}
}

// SessionStream godoc
//
//	@Summary		Stream a session
//	@Description	WebSocket of tick, crashed and cashed_out frames. The socket closes after the terminal frame; a resolved session yields only its terminal frame.
//	@Tags			Stream
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Session ID"
//	@Success		101
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Router			/api/crash/sessions/{id}/stream [get]
func (h *StreamHandler) SessionStream(w http.ResponseWriter, r *http.Request) {
	sub, err := h.streamService.Subscribe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, crashservice.ErrSessionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer sub.Close()

	h.serve(w, r, sub)
}

// AccountStream godoc
//
//	@Summary		Stream own session results
//	@Description	WebSocket of started, crashed and cashed_out frames for every session of the authenticated account.
//	@Tags			Stream
//	@Security		BearerAuth
//	@Success		101
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/crash/stream [get]
func (h *StreamHandler) AccountStream(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	sub := h.streamService.SubscribeAccount(accountID)
	defer sub.Close()

	h.serve(w, r, sub)
}

func (h *StreamHandler) serve(w http.ResponseWriter, r *http.Request, sub *broadcast.Subscription) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go readPump(conn, gone)
	writePump(conn, sub, gone)
}

// readPump discards client frames and reports when the peer goes away.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, sub *broadcast.Subscription, gone <-chan struct{}) {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			return
		case ev, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream ended"))
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				zap.L().Debug("websocket write failed", zap.String("session_id", ev.SessionID), zap.Error(err))
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
