package crashservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/domain"
	"github.com/GlebRadaev/crashbet/internal/events"
	"github.com/GlebRadaev/crashbet/internal/fairness"
	"github.com/GlebRadaev/crashbet/internal/metrics"
	"github.com/GlebRadaev/crashbet/internal/pg"
	"github.com/GlebRadaev/crashbet/internal/service/ledgerservice"
)

type Ledger interface {
	Debit(ctx context.Context, accountID int64, amount decimal.Decimal, reason domain.EntryReason, sessionID *string) (*domain.LedgerEntry, error)
	Credit(ctx context.Context, accountID int64, amount decimal.Decimal, reason domain.EntryReason, sessionID *string) (*domain.LedgerEntry, error)
}

type SessionRepo interface {
	Create(ctx context.Context, session *domain.CrashSession) error
	Get(ctx context.Context, sessionID string) (*domain.CrashSession, error)
	Transition(ctx context.Context, sessionID string, from, to domain.SessionStatus, fields domain.TransitionFields) (*domain.CrashSession, error)
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.CrashSession, error)
	StatsByAccount(ctx context.Context, accountID int64) (*domain.AccountStats, error)
	RecentRounds(ctx context.Context, limit int) ([]domain.RoundSummary, error)
	FindActive(ctx context.Context, limit int) ([]domain.CrashSession, error)
}

type ReconciliationRepo interface {
	Record(ctx context.Context, issue *domain.ReconciliationIssue) error
}

type OutcomeGenerator interface {
	NewSeed() (*fairness.Seed, error)
	Reveal(seed *fairness.Seed, clientSeed string) (*fairness.Outcome, error)
	Verify(serverSeed, commitment, clientSeed string) (decimal.Decimal, error)
}

type AuditLog interface {
	Publish(ctx context.Context, s events.Settlement)
}

var (
	ErrInvalidAmount          = ledgerservice.ErrInvalidAmount
	ErrInsufficientFunds      = ledgerservice.ErrInsufficientFunds
	ErrSessionNotFound        = domain.ErrSessionNotFound
	ErrInvalidMultiplier      = errors.New("invalid multiplier")
	ErrSessionAlreadyResolved = errors.New("session already resolved")
	ErrSessionActive          = errors.New("session is still active")
	ErrReconciliation         = errors.New("payout could not be credited, settlement recorded for reconciliation")
)

const (
	DefaultTickInterval = 100 * time.Millisecond
	historyLimit        = 50
)

var (
	DefaultTickStep = decimal.RequireFromString("0.01")
	one             = decimal.NewFromInt(1)
)

type Config struct {
	TickInterval time.Duration
	TickStep     decimal.Decimal
}

type Deps struct {
	TxManager pg.TXManager
	Ledger    Ledger
	Sessions  SessionRepo
	Issues    ReconciliationRepo
	Generator OutcomeGenerator
	Hub       *broadcast.Hub
	Audit     AuditLog
	Metrics   *metrics.Metrics
}

type StartResult struct {
	SessionID  string
	Commitment string
	// NextCommitment commits to the seed of the account's next session. Empty if it could not
	// be drawn; NextCommitment then issues it on demand.
	NextCommitment string
}

type CashOutResult struct {
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
}

type VerifyResult struct {
	CrashPoint decimal.Decimal
	ServerSeed string
	Commitment string
	ClientSeed string
	Verified   bool
}

// SessionView is a session as its owner may see it.
type SessionView struct {
	domain.CrashSession
	CurrentMultiplier *decimal.Decimal
}

// Service runs crash sessions: it debits the stake, owns one tick loop per active session
// and settles cash-outs against the auto-crash through a status compare-and-swap.
type Service struct {
	txManager pg.TXManager
	ledger    Ledger
	sessions  SessionRepo
	issues    ReconciliationRepo
	generator OutcomeGenerator
	hub       *broadcast.Hub
	audit     AuditLog
	metrics   *metrics.Metrics

	interval time.Duration
	step     decimal.Decimal
	now      func() time.Time

	seedMu sync.Mutex
	seeds  map[int64]*fairness.Seed

	mu      sync.Mutex
	loops   map[string]context.CancelFunc
	wg      sync.WaitGroup
	closed  bool
	baseCtx context.Context
	stop    context.CancelFunc
}

func New(deps Deps, cfg Config) *Service {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if !cfg.TickStep.IsPositive() {
		cfg.TickStep = DefaultTickStep
	}
	if deps.Audit == nil {
		deps.Audit = events.Nop{}
	}
	baseCtx, stop := context.WithCancel(context.Background())

	return &Service{
		txManager: deps.TxManager,
		ledger:    deps.Ledger,
		sessions:  deps.Sessions,
		issues:    deps.Issues,
		generator: deps.Generator,
		hub:       deps.Hub,
		audit:     deps.Audit,
		metrics:   deps.Metrics,
		interval:  cfg.TickInterval,
		step:      cfg.TickStep,
		now:       time.Now,
		seeds:     make(map[int64]*fairness.Seed),
		loops:     make(map[string]context.CancelFunc),
		baseCtx:   baseCtx,
		stop:      stop,
	}
}

// Start debits the stake and creates the session in one transaction, then starts its tick loop.
// The crash point is never part of the result.
func (s *Service) Start(ctx context.Context, accountID int64, stake decimal.Decimal, clientSeed string) (*StartResult, error) {
	if !ledgerservice.ValidAmount(stake) {
		return nil, ErrInvalidAmount
	}

	seed, err := s.takeSeed(accountID)
	if err != nil {
		zap.L().Error("failed to draw server seed", zap.Error(err))
		return nil, fmt.Errorf("draw crash point: %w", err)
	}
	outcome, err := s.generator.Reveal(seed, clientSeed)
	if err != nil {
		zap.L().Error("failed to derive crash point", zap.Error(err))
		return nil, fmt.Errorf("draw crash point: %w", err)
	}

	id := uuid.NewString()
	session := &domain.CrashSession{
		ID:         id,
		AccountID:  accountID,
		Stake:      stake,
		CrashPoint: outcome.CrashPoint,
		ServerSeed: outcome.ServerSeed,
		Commitment: outcome.Commitment,
		ClientSeed: outcome.ClientSeed,
		Status:     domain.StatusActive,
		CreatedAt:  s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, accountID, stake, domain.ReasonBet, &id); err != nil {
			return err
		}
		return s.sessions.Create(ctx, session)
	})
	if err != nil {
		s.returnSeed(accountID, seed)
		return nil, err
	}

	zap.L().Info("crash session started",
		zap.String("session_id", id),
		zap.Int64("account_id", accountID),
		zap.String("stake", stake.String()))
	s.metrics.SessionStarted(stake)
	s.audit.Publish(ctx, events.Settlement{
		Type:       events.SettlementBetPlaced,
		SessionID:  id,
		AccountID:  accountID,
		Stake:      stake,
		Commitment: session.Commitment,
		ClientSeed: session.ClientSeed,
	})
	s.hub.Publish(broadcast.Started(id, accountID))
	s.startLoop(*session)

	result := &StartResult{SessionID: id, Commitment: session.Commitment}
	if next, err := s.NextCommitment(ctx, accountID); err == nil {
		result.NextCommitment = next
	}
	return result, nil
}

// NextCommitment returns the commitment to the server seed the account's next session will
// use, drawing the seed if none is pending. Players fix their client seed after seeing it.
func (s *Service) NextCommitment(_ context.Context, accountID int64) (string, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if seed, ok := s.seeds[accountID]; ok {
		return seed.Commitment, nil
	}
	seed, err := s.generator.NewSeed()
	if err != nil {
		zap.L().Error("failed to draw server seed", zap.Int64("account_id", accountID), zap.Error(err))
		return "", fmt.Errorf("draw server seed: %w", err)
	}
	s.seeds[accountID] = seed
	return seed.Commitment, nil
}

// takeSeed consumes the account's pending seed, or draws one if the player never asked for a
// commitment.
func (s *Service) takeSeed(accountID int64) (*fairness.Seed, error) {
	s.seedMu.Lock()
	seed, ok := s.seeds[accountID]
	delete(s.seeds, accountID)
	s.seedMu.Unlock()

	if ok {
		return seed, nil
	}
	return s.generator.NewSeed()
}

// returnSeed puts back a seed whose session was never created, unless a newer one is pending.
func (s *Service) returnSeed(accountID int64, seed *fairness.Seed) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	if _, ok := s.seeds[accountID]; !ok {
		s.seeds[accountID] = seed
	}
}

// CashOut settles an active session at the requested multiplier. The request must not exceed
// the crash point nor the multiplier the session has reached by now; a tie with the crash
// point is paid.
func (s *Service) CashOut(ctx context.Context, sessionID string, accountID int64, requested decimal.Decimal) (*CashOutResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountID != accountID {
		return nil, ErrSessionNotFound
	}
	if session.Status != domain.StatusActive {
		s.metrics.CashOutRejected("already_resolved")
		return nil, ErrSessionAlreadyResolved
	}
	if !s.acceptable(session, requested) {
		s.metrics.CashOutRejected("invalid_multiplier")
		return nil, ErrInvalidMultiplier
	}

	payout := session.Stake.Mul(requested).Truncate(2)
	resolved, err := s.sessions.Transition(ctx, sessionID, domain.StatusActive, domain.StatusCashedOut, domain.TransitionFields{
		CashOutMultiplier: &requested,
		Payout:            &payout,
		FinishedAt:        s.now(),
	})
	if errors.Is(err, domain.ErrInvalidTransition) {
		zap.L().Info("cash-out lost the race", zap.String("session_id", sessionID))
		s.metrics.CashOutRejected("already_resolved")
		return nil, ErrSessionAlreadyResolved
	}
	if err != nil {
		return nil, err
	}

	s.stopLoop(sessionID)

	// The session is resolved from here on; a cancelled request must not abort the payout.
	ctx = context.WithoutCancel(ctx)
	_, creditErr := s.ledger.Credit(ctx, accountID, payout, domain.ReasonPayout, &sessionID)

	s.hub.Publish(broadcast.CashedOut(sessionID, accountID, requested, payout))
	if creditErr != nil {
		return nil, s.escalate(ctx, resolved, payout, creditErr)
	}

	zap.L().Info("crash session cashed out",
		zap.String("session_id", sessionID),
		zap.String("multiplier", requested.String()),
		zap.String("payout", payout.String()))
	s.metrics.SessionResolved(string(domain.StatusCashedOut), payout)
	s.audit.Publish(ctx, events.Settlement{
		Type:       events.SettlementCashedOut,
		SessionID:  sessionID,
		AccountID:  accountID,
		Stake:      resolved.Stake,
		Multiplier: &requested,
		Payout:     &payout,
		CrashPoint: &resolved.CrashPoint,
		ServerSeed: resolved.ServerSeed,
		Commitment: resolved.Commitment,
		ClientSeed: resolved.ClientSeed,
	})

	return &CashOutResult{Multiplier: requested, Payout: payout}, nil
}

func (s *Service) acceptable(session *domain.CrashSession, requested decimal.Decimal) bool {
	if !requested.Equal(requested.Truncate(2)) {
		return false
	}
	if requested.LessThan(one) || requested.GreaterThan(session.CrashPoint) {
		return false
	}
	return !requested.GreaterThan(s.CurrentMultiplier(session))
}

// escalate records a resolved session whose payout was not credited. It is never retried.
func (s *Service) escalate(ctx context.Context, session *domain.CrashSession, payout decimal.Decimal, creditErr error) error {
	zap.L().Error("payout credit failed after cash-out",
		zap.String("session_id", session.ID),
		zap.Int64("account_id", session.AccountID),
		zap.String("payout", payout.String()),
		zap.Error(creditErr))
	s.metrics.ReconciliationError()

	issue := &domain.ReconciliationIssue{
		SessionID: session.ID,
		AccountID: session.AccountID,
		Amount:    payout,
		Reason:    domain.ReasonPayout,
		Error:     creditErr.Error(),
	}
	if err := s.issues.Record(ctx, issue); err != nil {
		zap.L().Error("failed to record reconciliation issue", zap.String("session_id", session.ID), zap.Error(err))
	}
	s.audit.Publish(ctx, events.Settlement{
		Type:       events.SettlementReconciliation,
		SessionID:  session.ID,
		AccountID:  session.AccountID,
		Stake:      session.Stake,
		Multiplier: session.CashOutMultiplier,
		Payout:     &payout,
		Commitment: session.Commitment,
		Error:      creditErr.Error(),
	})

	return fmt.Errorf("%w: %v", ErrReconciliation, creditErr)
}

// CurrentMultiplier is 1.00 plus one step per elapsed interval, capped at the crash point.
func (s *Service) CurrentMultiplier(session *domain.CrashSession) decimal.Decimal {
	return s.multiplierAt(s.tickIndex(session), session.CrashPoint)
}

func (s *Service) tickIndex(session *domain.CrashSession) int64 {
	elapsed := s.now().Sub(session.CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / s.interval)
}

func (s *Service) multiplierAt(n int64, crashPoint decimal.Decimal) decimal.Decimal {
	m := one.Add(s.step.Mul(decimal.NewFromInt(n)))
	if m.GreaterThan(crashPoint) {
		return crashPoint
	}
	return m
}

// Get returns the caller's session. The crash point and server seed stay hidden while it is
// active, and the multiplier reached so far is reported instead.
func (s *Service) Get(ctx context.Context, sessionID string, accountID int64) (*SessionView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountID != accountID {
		return nil, ErrSessionNotFound
	}

	view := &SessionView{CrashSession: *session}
	if session.Status == domain.StatusActive {
		current := s.CurrentMultiplier(session)
		view.CurrentMultiplier = &current
	}
	conceal(&view.CrashSession)
	return view, nil
}

func (s *Service) History(ctx context.Context, accountID int64) ([]domain.CrashSession, error) {
	sessions, err := s.sessions.ListByAccount(ctx, accountID, historyLimit)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		conceal(&sessions[i])
	}
	return sessions, nil
}

func (s *Service) Stats(ctx context.Context, accountID int64) (*domain.AccountStats, error) {
	return s.sessions.StatsByAccount(ctx, accountID)
}

func (s *Service) RecentRounds(ctx context.Context, limit int) ([]domain.RoundSummary, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	return s.sessions.RecentRounds(ctx, limit)
}

// Verify recomputes a finished session's crash point from its revealed seeds. Verified proves
// the crash point follows from the committed seed; it proves the seed was not chosen against the
// client seed only if the player took the commitment from NextCommitment (or the previous
// session's StartResult) before picking that client seed.
func (s *Service) Verify(ctx context.Context, sessionID string, accountID int64) (*VerifyResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountID != accountID {
		return nil, ErrSessionNotFound
	}
	if !session.Status.Terminal() {
		return nil, ErrSessionActive
	}

	result := &VerifyResult{
		CrashPoint: session.CrashPoint,
		ServerSeed: session.ServerSeed,
		Commitment: session.Commitment,
		ClientSeed: session.ClientSeed,
	}
	point, err := s.generator.Verify(session.ServerSeed, session.Commitment, session.ClientSeed)
	if errors.Is(err, fairness.ErrCommitmentMismatch) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Verified = point.Equal(session.CrashPoint)
	return result, nil
}

// Subscribe streams a session's events. A finished session yields only its terminal event.
func (s *Service) Subscribe(ctx context.Context, sessionID string) (*broadcast.Subscription, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Status.Terminal() {
		if ev, ok := s.hub.Terminal(sessionID); ok {
			return broadcast.Closed(ev), nil
		}
		return broadcast.Closed(terminalEvent(session)), nil
	}
	return s.hub.SubscribeSession(sessionID), nil
}

func (s *Service) SubscribeAccount(accountID int64) *broadcast.Subscription {
	return s.hub.SubscribeAccount(accountID)
}

func terminalEvent(session *domain.CrashSession) broadcast.Event {
	if session.Status == domain.StatusCashedOut && session.CashOutMultiplier != nil && session.Payout != nil {
		return broadcast.CashedOut(session.ID, session.AccountID, *session.CashOutMultiplier, *session.Payout)
	}
	return broadcast.Crashed(session.ID, session.AccountID, session.CrashPoint)
}

func conceal(session *domain.CrashSession) {
	if session.Status == domain.StatusActive {
		session.CrashPoint = decimal.Zero
		session.ServerSeed = ""
	}
}
