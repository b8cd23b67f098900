package driverrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetDriver(ctx context.Context, id string) (*domain.Driver, error) {
	query := `
        SELECT id, name, wallet_usd, wallet_lbp
        FROM drivers
        WHERE id = $1
    `
	var driver domain.Driver
	err := r.db.QueryRow(ctx, query, id).Scan(&driver.ID, &driver.Name, &driver.Wallet.USD, &driver.Wallet.LBP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get driver", zap.String("driver_id", id), zap.Error(err))
		return nil, err
	}
	return &driver, nil
}

// AdjustWallet adds delta to the wallet in a single UPDATE, so concurrent settlements on the
// same driver never lose each other's increments.
func (r *Repository) AdjustWallet(ctx context.Context, id string, delta domain.Money) (*domain.Driver, error) {
	query := `
        UPDATE drivers
        SET wallet_usd = wallet_usd + $1, wallet_lbp = wallet_lbp + $2
        WHERE id = $3
        RETURNING id, name, wallet_usd, wallet_lbp
    `
	var driver domain.Driver
	err := r.db.QueryRow(ctx, query, delta.USD, delta.LBP, id).Scan(&driver.ID, &driver.Name, &driver.Wallet.USD, &driver.Wallet.LBP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.ConcurrencyError{Op: "adjust wallet", Key: id}
		}
		zap.L().Error("failed to adjust driver wallet", zap.String("driver_id", id), zap.Error(err))
		return nil, err
	}
	return &driver, nil
}

func (r *Repository) ListDriverIDs(ctx context.Context) ([]string, error) {
	query := `
        SELECT id
        FROM drivers
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list drivers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan driver id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
