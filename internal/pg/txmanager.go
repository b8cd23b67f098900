package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxManager struct {
	pool Beginner
}

func NewTXManager(pool Beginner) *TxManager {
	return &TxManager{pool: pool}
}

// Begin runs fn inside one transaction. A Begin nested in another joins the outer transaction,
// so a whole settlement commits or rolls back as a unit.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("can't rollback transaction", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			zap.L().Error("can't commit transaction", zap.Error(err))
		}
	}()

	return fn(withTx(ctx, tx))
}
