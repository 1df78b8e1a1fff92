// Package memory keeps accounts, ledger entries and crash sessions in process memory.
// It implements the same repository contracts as the Postgres repositories and a
// transaction manager, so the engine runs unchanged on top of it.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/pg"
)

var ErrNegativeBalance = errors.New("balance must not be negative")

type txKey struct{}

// journal records what a transaction overwrote so a rollback can put it back.
type journal struct {
	accounts    map[int64]*domain.Account
	sessions    map[string]*domain.CrashSession
	entries     int
	issues      int
	nextEntryID int64
	nextIssueID int64
}

// Store serializes every transaction behind one mutex and undoes its writes on rollback.
type Store struct {
	mu          sync.Mutex
	accounts    map[int64]domain.Account
	entries     []domain.LedgerEntry
	sessions    map[string]domain.CrashSession
	issues      []domain.ReconciliationIssue
	nextEntryID int64
	nextIssueID int64
	journal     *journal
}

var _ pg.TXManager = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts: make(map[int64]domain.Account),
		sessions: make(map[string]domain.CrashSession),
	}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// lock takes the store mutex unless ctx already runs inside one of this store's transactions.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.journal = &journal{
		accounts:    make(map[int64]*domain.Account),
		sessions:    make(map[string]*domain.CrashSession),
		entries:     len(s.entries),
		issues:      len(s.issues),
		nextEntryID: s.nextEntryID,
		nextIssueID: s.nextIssueID,
	}
	defer func() { s.journal = nil }()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.rollback()
		return err
	}
	return nil
}

func (s *Store) rollback() {
	j := s.journal
	for id, prev := range j.accounts {
		if prev == nil {
			delete(s.accounts, id)
		} else {
			s.accounts[id] = *prev
		}
	}
	for id, prev := range j.sessions {
		if prev == nil {
			delete(s.sessions, id)
		} else {
			s.sessions[id] = *prev
		}
	}
	s.entries = s.entries[:j.entries]
	s.issues = s.issues[:j.issues]
	s.nextEntryID = j.nextEntryID
	s.nextIssueID = j.nextIssueID
}

func (s *Store) touchAccount(id int64) {
	if s.journal == nil {
		return
	}
	if _, seen := s.journal.accounts[id]; seen {
		return
	}
	if prev, ok := s.accounts[id]; ok {
		s.journal.accounts[id] = &prev
	} else {
		s.journal.accounts[id] = nil
	}
}

func (s *Store) touchSession(id string) {
	if s.journal == nil {
		return
	}
	if _, seen := s.journal.sessions[id]; seen {
		return
	}
	if prev, ok := s.sessions[id]; ok {
		s.journal.sessions[id] = &prev
	} else {
		s.journal.sessions[id] = nil
	}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	defer s.lock(ctx)()
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (s *Store) LockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.GetAccount(ctx, accountID)
}

func (s *Store) CreateAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	defer s.lock(ctx)()
	account, ok := s.accounts[accountID]
	if !ok {
		account = domain.Account{ID: accountID, Balance: decimal.Zero, UpdatedAt: time.Now()}
		s.touchAccount(accountID)
		s.accounts[accountID] = account
	}
	return &account, nil
}

func (s *Store) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	defer s.lock(ctx)()
	account, ok := s.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if balance.IsNegative() {
		return ErrNegativeBalance
	}
	s.touchAccount(accountID)
	account.Balance = balance
	account.UpdatedAt = time.Now()
	s.accounts[accountID] = account
	return nil
}

func (s *Store) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	defer s.lock(ctx)()
	s.nextEntryID++
	entry.ID = s.nextEntryID
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, *entry)
	return entry, nil
}

func (s *Store) ListEntries(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error) {
	defer s.lock(ctx)()
	var entries []domain.LedgerEntry
	for i := len(s.entries) - 1; i >= 0 && len(entries) < limit; i-- {
		if s.entries[i].AccountID == accountID {
			entries = append(entries, s.entries[i])
		}
	}
	return entries, nil
}

func (s *Store) SumEntries(ctx context.Context, accountID int64) (credits, debits decimal.Decimal, err error) {
	defer s.lock(ctx)()
	for _, e := range s.entries {
		if e.AccountID != accountID {
			continue
		}
		if e.Kind == domain.EntryCredit {
			credits = credits.Add(e.Amount)
		} else {
			debits = debits.Add(e.Amount)
		}
	}
	return credits, debits, nil
}

func (s *Store) Create(ctx context.Context, session *domain.CrashSession) error {
	defer s.lock(ctx)()
	if _, ok := s.sessions[session.ID]; ok {
		return errors.New("duplicate session id")
	}
	if _, ok := s.accounts[session.AccountID]; !ok {
		return domain.ErrAccountNotFound
	}
	s.touchSession(session.ID)
	s.sessions[session.ID] = *session
	return nil
}

func (s *Store) Get(ctx context.Context, sessionID string) (*domain.CrashSession, error) {
	defer s.lock(ctx)()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *Store) Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus, fields domain.TransitionFields) (*domain.CrashSession, error) {
	defer s.lock(ctx)()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	s.touchSession(sessionID)
	finishedAt := fields.FinishedAt
	session.Status = to
	session.CashOutMultiplier = fields.CashOutMultiplier
	session.Payout = fields.Payout
	session.FinishedAt = &finishedAt
	s.sessions[sessionID] = session
	return &session, nil
}

func (s *Store) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.CrashSession, error) {
	defer s.lock(ctx)()
	sessions := s.filter(func(cs domain.CrashSession) bool { return cs.AccountID == accountID })
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.After(sessions[j].CreatedAt) })
	return truncate(sessions, limit), nil
}

func (s *Store) FindActive(ctx context.Context, limit int) ([]domain.CrashSession, error) {
	defer s.lock(ctx)()
	sessions := s.filter(func(cs domain.CrashSession) bool { return cs.Status == domain.StatusActive })
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.Before(sessions[j].CreatedAt) })
	return truncate(sessions, limit), nil
}

func (s *Store) StatsByAccount(ctx context.Context, accountID int64) (*domain.AccountStats, error) {
	defer s.lock(ctx)()
	stats := &domain.AccountStats{}
	for _, cs := range s.sessions {
		if cs.AccountID != accountID {
			continue
		}
		stats.TotalSessions++
		stats.TotalWagered = stats.TotalWagered.Add(cs.Stake)
		if cs.Status == domain.StatusCashedOut {
			stats.TotalWins++
		}
		if cs.Payout != nil {
			stats.TotalWon = stats.TotalWon.Add(*cs.Payout)
		}
		if cs.CashOutMultiplier != nil && cs.CashOutMultiplier.GreaterThan(stats.HighestMultiplier) {
			stats.HighestMultiplier = *cs.CashOutMultiplier
		}
	}
	return stats, nil
}

func (s *Store) RecentRounds(ctx context.Context, limit int) ([]domain.RoundSummary, error) {
	defer s.lock(ctx)()
	sessions := s.filter(func(cs domain.CrashSession) bool { return cs.Status.Terminal() })
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].FinishedAt.After(*sessions[j].FinishedAt) })

	rounds := make([]domain.RoundSummary, 0, len(sessions))
	for _, cs := range truncate(sessions, limit) {
		rounds = append(rounds, domain.RoundSummary{
			SessionID:  cs.ID,
			CrashPoint: cs.CrashPoint,
			Status:     cs.Status,
			FinishedAt: *cs.FinishedAt,
		})
	}
	return rounds, nil
}

func (s *Store) Record(ctx context.Context, issue *domain.ReconciliationIssue) error {
	defer s.lock(ctx)()
	s.nextIssueID++
	issue.ID = s.nextIssueID
	issue.CreatedAt = time.Now()
	s.issues = append(s.issues, *issue)
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.ReconciliationIssue, error) {
	defer s.lock(ctx)()
	var issues []domain.ReconciliationIssue
	for i := len(s.issues) - 1; i >= 0 && len(issues) < limit; i-- {
		issues = append(issues, s.issues[i])
	}
	return issues, nil
}

func (s *Store) filter(keep func(domain.CrashSession) bool) []domain.CrashSession {
	var sessions []domain.CrashSession
	for _, cs := range s.sessions {
		if keep(cs) {
			sessions = append(sessions, cs)
		}
	}
	return sessions
}

func truncate(sessions []domain.CrashSession, limit int) []domain.CrashSession {
	if limit > 0 && len(sessions) > limit {
		return sessions[:limit]
	}
	return sessions
}
