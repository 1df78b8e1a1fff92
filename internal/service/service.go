package service

import (
	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/metrics"
	"github.com/GlebRadaev/crashbet/internal/repo"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
	"github.com/GlebRadaev/crashbet/internal/service/ledgerservice"
)

type Services struct {
	LedgerService *ledgerservice.Service
	CrashService  *crashservice.Service
}

// Deps are the engine collaborators that do not live in a repository.
type Deps struct {
	Generator crashservice.OutcomeGenerator
	Hub       *broadcast.Hub
	Audit     crashservice.AuditLog
	Metrics   *metrics.Metrics
	Engine    crashservice.Config
}

func New(repo *repo.Repositories, deps Deps) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.TxManager)
	crashService := crashservice.New(crashservice.Deps{
		TxManager: repo.TxManager,
		Ledger:    ledgerService,
		Sessions:  repo.SessionRepo,
		Issues:    repo.Reconciliation,
		Generator: deps.Generator,
		Hub:       deps.Hub,
		Audit:     deps.Audit,
		Metrics:   deps.Metrics,
	}, deps.Engine)

	return &Services{
		LedgerService: ledgerService,
		CrashService:  crashService,
	}
}
