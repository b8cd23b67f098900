package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Soufian-A/runners-erp/internal/config"
	"github.com/Soufian-A/runners-erp/internal/domain"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile

const workers = 10

type Ledger interface {
	ListDriverIDs(ctx context.Context) ([]string, error)
	ReconcileDriver(ctx context.Context, driverID string) (*domain.WalletReconciliation, error)
}

// Report summarizes one pass over all drivers.
type Report struct {
	Checked    int64
	Mismatched int64
	Failed     int64
}

type Service struct {
	ledger   Ledger
	pool     *checkPool
	interval time.Duration
	inFlight sync.Map
}

func New(cfg *config.Config, ledger Ledger) *Service {
	s := &Service{
		ledger:   ledger,
		interval: cfg.ReconcileInterval,
	}
	s.pool = newCheckPool(workers, s.check)
	return s
}

// Start runs a pass every interval until ctx is done. A non-positive interval disables the loop.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("wallet reconciler disabled")
		s.pool.close()
		return
	}
	zap.L().Info("wallet reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.pool.close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping wallet reconciler")
			return
		case <-ticker.C:
			report, err := s.Reconcile(ctx)
			if err != nil {
				zap.L().Error("wallet reconciliation failed", zap.Error(err))
				continue
			}
			zap.L().Info("wallet reconciliation done",
				zap.Int64("checked", report.Checked),
				zap.Int64("mismatched", report.Mismatched),
				zap.Int64("failed", report.Failed))
		}
	}
}

// Reconcile checks every driver wallet against its transactions and waits for the pass to finish.
// Drivers still being checked by an earlier pass are skipped.
func (s *Service) Reconcile(ctx context.Context) (Report, error) {
	ids, err := s.ledger.ListDriverIDs(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list drivers: %w", err)
	}

	var (
		p pass
		g errgroup.Group
	)
	for _, id := range ids {
		id := id
		if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}
		release := func() { s.inFlight.Delete(id) }

		p.pending.Add(1)
		g.Go(func() error {
			err := s.pool.submit(ctx, job{ctx: ctx, driverID: id, pass: &p, release: release})
			if err != nil {
				release()
				p.pending.Done()
			}
			return err
		})
	}

	err = g.Wait()
	p.pending.Wait()
	return p.report(), err
}

func (s *Service) check(ctx context.Context, driverID string) (bool, error) {
	rec, err := s.ledger.ReconcileDriver(ctx, driverID)
	if err != nil {
		return false, fmt.Errorf("reconcile driver %s: %w", driverID, err)
	}
	if !rec.Balanced() {
		zap.L().Warn("driver wallet does not match its transactions",
			zap.String("driver_id", driverID),
			zap.Stringer("wallet", rec.Wallet),
			zap.Stringer("ledger_sum", rec.LedgerSum))
		return false, nil
	}
	return true, nil
}
