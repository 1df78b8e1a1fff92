package repo

import (
	"github.com/GlebRadaev/crashbet/internal/pg"
	accountrepo "github.com/GlebRadaev/crashbet/internal/repo/account-repo"
	"github.com/GlebRadaev/crashbet/internal/repo/memory"
	reconciliationrepo "github.com/GlebRadaev/crashbet/internal/repo/reconciliation-repo"
	sessionrepo "github.com/GlebRadaev/crashbet/internal/repo/session-repo"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
	"github.com/GlebRadaev/crashbet/internal/service/ledgerservice"
)

type Repositories struct {
	TxManager      pg.TXManager
	AccountRepo    ledgerservice.Repo
	SessionRepo    crashservice.SessionRepo
	Reconciliation crashservice.ReconciliationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:      txManager,
		AccountRepo:    accountrepo.New(conn),
		SessionRepo:    sessionrepo.New(conn),
		Reconciliation: reconciliationrepo.New(conn),
	}
}

// NewMemory backs every repository with one in-process store.
func NewMemory(store *memory.Store) *Repositories {
	return &Repositories{
		TxManager:      store,
		AccountRepo:    store,
		SessionRepo:    store,
		Reconciliation: store,
	}
}
