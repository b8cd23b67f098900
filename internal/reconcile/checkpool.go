package reconcile

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type checkFn func(ctx context.Context, driverID string) (bool, error)

// pass collects the outcome of one reconciliation run across the workers.
type pass struct {
	checked, mismatched, failed atomic.Int64
	pending                     sync.WaitGroup
}

func (p *pass) record(driverID string, balanced bool, err error) {
	switch {
	case err != nil:
		p.failed.Add(1)
		zap.L().Error("wallet check failed", zap.String("driver_id", driverID), zap.Error(err))
	case !balanced:
		p.checked.Add(1)
		p.mismatched.Add(1)
	default:
		p.checked.Add(1)
	}
}

func (p *pass) report() Report {
	return Report{
		Checked:    p.checked.Load(),
		Mismatched: p.mismatched.Load(),
		Failed:     p.failed.Load(),
	}
}

type job struct {
	ctx      context.Context
	driverID string
	pass     *pass
	release  func()
}

// checkPool runs wallet checks on a fixed number of workers.
type checkPool struct {
	jobs  chan job
	check checkFn
	once  sync.Once
}

func newCheckPool(size int, check checkFn) *checkPool {
	p := &checkPool{
		jobs:  make(chan job, size),
		check: check,
	}
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *checkPool) worker() {
	for j := range p.jobs {
		balanced, err := p.check(j.ctx, j.driverID)
		j.pass.record(j.driverID, balanced, err)
		if j.release != nil {
			j.release()
		}
		j.pass.pending.Done()
	}
}

// submit queues the job, waiting for room until ctx is done. The caller has already
// counted the job in its pass.
func (p *checkPool) submit(ctx context.Context, j job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- j:
		return nil
	}
}

// close stops the workers once queued jobs drain. submit must not be called afterwards.
func (p *checkPool) close() {
	p.once.Do(func() {
		close(p.jobs)
	})
}
