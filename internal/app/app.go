package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crashbet/internal/broadcast"
	"github.com/GlebRadaev/crashbet/internal/config"
	"github.com/GlebRadaev/crashbet/internal/events"
	"github.com/GlebRadaev/crashbet/internal/fairness"
	"github.com/GlebRadaev/crashbet/internal/handlers"
	"github.com/GlebRadaev/crashbet/internal/metrics"
	"github.com/GlebRadaev/crashbet/internal/pg"
	"github.com/GlebRadaev/crashbet/internal/repo"
	"github.com/GlebRadaev/crashbet/internal/repo/memory"
	"github.com/GlebRadaev/crashbet/internal/service"
	"github.com/GlebRadaev/crashbet/internal/service/crashservice"
	"github.com/GlebRadaev/crashbet/internal/sweeper"
	"github.com/GlebRadaev/crashbet/pkg/auth"
	"github.com/GlebRadaev/crashbet/pkg/logger"
	"github.com/GlebRadaev/crashbet/pkg/workerpool"
)

const (
	shutdownTimeout = 5 * time.Second
	relayQueueSize  = 4096
	auditWorkers    = 4
	auditQueueSize  = 4096
	sweepWorkers    = 4
	sweepQueueSize  = 256
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	sweeper  *sweeper.Service
	registry *prometheus.Registry
	hub      *broadcast.Hub
	relay    *broadcast.RedisRelay
	audit    crashservice.AuditLog
	ping     metrics.HealthFunc
	closers  []func() error

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	if a.cfg == nil {
		a.cfg = config.New()
	}
	cfg := a.cfg

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.initStorage(ctx); err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(a.registry)

	if err := a.initBroadcast(ctx, m); err != nil {
		return err
	}
	a.initAudit()

	deps, err := engineDeps(cfg)
	if err != nil {
		return err
	}
	deps.Hub = a.hub
	deps.Audit = a.audit
	deps.Metrics = m

	a.srv = service.New(a.repo, deps)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))

	sweepPool := workerpool.New(sweepWorkers, sweepQueueSize)
	a.closers = append(a.closers, func() error { sweepPool.Close(); return nil })
	a.sweeper = sweeper.New(a.srv.CrashService, sweepPool, cfg.SweepInterval)

	if err := a.seedAccounts(ctx); err != nil {
		return fmt.Errorf("can't seed accounts: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startMetricsServer(ctx)
	a.startSweeper(ctx)
	a.startRelay(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) initStorage(ctx context.Context) error {
	if a.cfg.Storage == config.StorageMemory {
		store := memory.New()
		a.repo = repo.NewMemory(store)
		a.ping = store.Ping
		zap.L().Warn("using in-memory storage, state is lost on restart")
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	conn := pg.New(pool)
	a.repo = repo.New(conn, pg.NewTXManager(pool))
	a.ping = conn.Ping
	a.closers = append(a.closers, func() error { pool.Close(); return nil })
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) initBroadcast(ctx context.Context, m *metrics.Metrics) error {
	opts := []broadcast.Option{
		broadcast.WithDropHook(func(t broadcast.EventType) { m.BroadcastDropped(string(t)) }),
	}

	if a.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("can't reach redis: %w", err)
		}
		a.relay = broadcast.NewRedisRelay(client, relayQueueSize)
		opts = append(opts, broadcast.WithRelay(a.relay))
		a.closers = append(a.closers, client.Close)
		zap.L().Info("relaying session events to redis", zap.String("addr", a.cfg.RedisAddr))
	}

	a.hub = broadcast.NewHub(opts...)
	return nil
}

func (a *Application) initAudit() {
	if a.cfg.KafkaBrokers == "" {
		a.audit = events.Nop{}
		return
	}

	pool := workerpool.New(auditWorkers, auditQueueSize)
	publisher := events.NewKafkaPublisher(events.NewWriter(a.cfg.KafkaBrokers, a.cfg.SettlementsTopic), pool)
	a.audit = publisher
	a.closers = append(a.closers, publisher.Close)
	zap.L().Info("publishing settlements to kafka", zap.String("topic", a.cfg.SettlementsTopic))
}

func engineDeps(cfg *config.Config) (service.Deps, error) {
	houseEdge, err := decimal.NewFromString(cfg.HouseEdge)
	if err != nil {
		return service.Deps{}, fmt.Errorf("invalid house edge %q: %w", cfg.HouseEdge, err)
	}
	maxPoint, err := decimal.NewFromString(cfg.MaxCrashPoint)
	if err != nil {
		return service.Deps{}, fmt.Errorf("invalid max crash point %q: %w", cfg.MaxCrashPoint, err)
	}
	step, err := decimal.NewFromString(cfg.TickStep)
	if err != nil {
		return service.Deps{}, fmt.Errorf("invalid tick step %q: %w", cfg.TickStep, err)
	}
	if houseEdge.IsNegative() || houseEdge.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return service.Deps{}, fmt.Errorf("house edge must be in [0, 1), got %s", houseEdge)
	}
	if maxPoint.LessThan(decimal.NewFromInt(1)) {
		return service.Deps{}, fmt.Errorf("max crash point must be at least 1, got %s", maxPoint)
	}

	return service.Deps{
		Generator: fairness.NewGenerator(houseEdge, maxPoint),
		Engine: crashservice.Config{
			TickInterval: cfg.TickInterval,
			TickStep:     step,
		},
	}, nil
}

type seedAccount struct {
	id      int64
	balance decimal.Decimal
}

// parseSeedAccounts reads "id:balance,id:balance".
func parseSeedAccounts(s string) ([]seedAccount, error) {
	var seeds []seedAccount
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		idPart, balancePart, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("malformed seed account %q", item)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("malformed seed account id %q", idPart)
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(balancePart))
		if err != nil || balance.IsNegative() {
			return nil, fmt.Errorf("malformed seed account balance %q", balancePart)
		}
		seeds = append(seeds, seedAccount{id: id, balance: balance})
	}
	return seeds, nil
}

func (a *Application) seedAccounts(ctx context.Context) error {
	seeds, err := parseSeedAccounts(a.cfg.SeedAccounts)
	if err != nil {
		return err
	}
	for _, seed := range seeds {
		account, err := a.srv.LedgerService.OpenAccount(ctx, seed.id, seed.balance)
		if err != nil {
			return fmt.Errorf("open account %d: %w", seed.id, err)
		}
		zap.L().Info("account ready", zap.Int64("account_id", account.ID), zap.String("balance", account.Balance.String()))
	}
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.serve(ctx, "http server", server)
	return nil
}

func (a *Application) startMetricsServer(ctx context.Context) {
	a.serve(ctx, "metrics server", metrics.NewServer(a.cfg.MetricsAddress, a.registry, a.ping))
}

func (a *Application) serve(ctx context.Context, name string, server *http.Server) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("server shutdown", zap.String("server", name), zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting "+name, zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("%s exited with error: %w", name, err)
		}
	}()
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.sweeper.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("session sweeper exited with error: %w", err)
		}
	}()
}

func (a *Application) startRelay(ctx context.Context) {
	if a.relay == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.relay.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("redis relay exited with error: %w", err)
		}
	}()
}

// shutdown stops tick loops before closing what they publish to. Active sessions stay ACTIVE
// and are picked up by the sweeper on the next start.
func (a *Application) shutdown() error {
	var errs []error
	if a.srv != nil {
		a.srv.CrashService.Shutdown()
	}
	if a.hub != nil {
		a.hub.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if err := a.shutdown(); err != nil {
		zap.L().Error("failed to release resources", zap.Error(err))
		if appErr == nil {
			appErr = err
		}
	}

	return appErr
}
