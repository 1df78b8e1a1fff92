package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/crashbet/docs"
	accounthandlers "github.com/GlebRadaev/crashbet/internal/handlers/account"
	crashhandlers "github.com/GlebRadaev/crashbet/internal/handlers/crash"
	streamhandlers "github.com/GlebRadaev/crashbet/internal/handlers/stream"
	"github.com/GlebRadaev/crashbet/internal/service"
	"github.com/GlebRadaev/crashbet/pkg/auth"
)

type CrashHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	CashOut(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetRounds(w http.ResponseWriter, r *http.Request)
	VerifySession(w http.ResponseWriter, r *http.Request)
	GetCommitment(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type StreamHandler interface {
	SessionStream(w http.ResponseWriter, r *http.Request)
	AccountStream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CrashHandler   CrashHandler
	AccountHandler AccountHandler
	StreamHandler  StreamHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		CrashHandler:   crashhandlers.New(s.CrashService),
		AccountHandler: accounthandlers.New(s.LedgerService),
		StreamHandler:  streamhandlers.New(s.CrashService, nil),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/crash/rounds", h.CrashHandler.GetRounds)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/crash", func(r chi.Router) {
				r.Get("/stats", h.CrashHandler.GetStats)
				r.Get("/commitment", h.CrashHandler.GetCommitment)
				r.Get("/stream", h.StreamHandler.AccountStream)
				r.Route("/sessions", func(r chi.Router) {
					r.Post("/", h.CrashHandler.StartSession)
					r.Get("/", h.CrashHandler.GetHistory)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.CrashHandler.GetSession)
						r.Post("/cashout", h.CrashHandler.CashOut)
						r.Get("/verify", h.CrashHandler.VerifySession)
						r.Get("/stream", h.StreamHandler.SessionStream)
					})
				})
			})
			r.Route("/account", func(r chi.Router) {
				r.Get("/balance", h.AccountHandler.GetBalance)
				r.Get("/ledger", h.AccountHandler.GetLedger)
			})
		})
	})

	return r
}
