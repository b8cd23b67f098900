package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/config"
	"github.com/Soufian-A/runners-erp/internal/handlers"
	"github.com/Soufian-A/runners-erp/internal/lock"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/internal/reconcile"
	"github.com/Soufian-A/runners-erp/internal/repo"
	"github.com/Soufian-A/runners-erp/internal/service"
	"github.com/Soufian-A/runners-erp/pkg/auth"
	"github.com/Soufian-A/runners-erp/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	reconciler *reconcile.Service

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
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, a.buildLocker(ctx))
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))
	a.reconciler = reconcile.New(cfg, a.srv.WalletLedger)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
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

// buildLocker falls back to NopLocker when no redis address is configured or the server
// does not answer. The order CAS still rejects a concurrent second settlement.
func (a *Application) buildLocker(ctx context.Context) lock.Locker {
	if a.cfg.RedisAddress == "" {
		return lock.NopLocker{}
	}
	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, settlement locks disabled", zap.String("addr", a.cfg.RedisAddress), zap.Error(err))
		_ = client.Close()
		return lock.NopLocker{}
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := client.Close(); err != nil {
			zap.L().Error("close redis client", zap.Error(err))
		}
	}()

	return lock.NewRedisLocker(client, a.cfg.LockTTL)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.reconciler.Start(ctx)
	}()
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

	return appErr
}
