package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// duplicate turns a unique violation on (subject, order_ref, source) into a ConcurrencyError.
func duplicate(err error, op, key string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.ConcurrencyError{Op: op, Key: key}
	}
	return err
}

func (r *Repository) InsertDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
	query := `
        INSERT INTO driver_transactions (id, driver_id, type, amount_usd, amount_lbp, order_ref, source, note, created_by)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.ID, tx.DriverID, string(tx.Type), tx.Amount.USD, tx.Amount.LBP, tx.OrderRef, string(tx.Source), tx.Note, tx.CreatedBy,
	).Scan(&tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save driver transaction", zap.String("driver_id", tx.DriverID), zap.String("order_ref", tx.OrderRef), zap.Error(err))
		return nil, duplicate(err, "record driver transaction", tx.OrderRef)
	}
	return tx, nil
}

func (r *Repository) InsertClientTransaction(ctx context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error) {
	query := `
        INSERT INTO client_transactions (id, client_id, type, amount_usd, amount_lbp, order_ref, source, note, created_by)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.ID, tx.ClientID, string(tx.Type), tx.Amount.USD, tx.Amount.LBP, tx.OrderRef, string(tx.Source), tx.Note, tx.CreatedBy,
	).Scan(&tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save client transaction", zap.String("client_id", tx.ClientID), zap.String("order_ref", tx.OrderRef), zap.Error(err))
		return nil, duplicate(err, "record client transaction", tx.OrderRef)
	}
	return tx, nil
}

func (r *Repository) InsertAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error) {
	query := `
        INSERT INTO accounting_entries (id, category, amount_usd, amount_lbp, order_ref, memo, created_by)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.ID, string(entry.Category), entry.Amount.USD, entry.Amount.LBP, entry.OrderRef, entry.Memo, entry.CreatedBy,
	).Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save accounting entry", zap.String("category", string(entry.Category)), zap.Error(err))
		return nil, duplicate(err, "record accounting entry", entry.OrderRef)
	}
	return entry, nil
}

func (r *Repository) DriverTransactionExists(ctx context.Context, orderRef string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM driver_transactions WHERE order_ref = $1)", orderRef).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check driver transactions", zap.String("order_ref", orderRef), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) DriverTransactionsByOrder(ctx context.Context, orderRef string) ([]domain.DriverTransaction, error) {
	query := `
        SELECT id, driver_id, type, amount_usd, amount_lbp, COALESCE(order_ref, ''), source, note, created_by, created_at
        FROM driver_transactions
        WHERE order_ref = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, orderRef)
	if err != nil {
		zap.L().Error("can't get driver transactions", zap.String("order_ref", orderRef), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.DriverTransaction
	for rows.Next() {
		var tx domain.DriverTransaction
		var txType, source string
		err := rows.Scan(&tx.ID, &tx.DriverID, &txType, &tx.Amount.USD, &tx.Amount.LBP, &tx.OrderRef, &source, &tx.Note, &tx.CreatedBy, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan driver transaction", zap.Error(err))
			return nil, err
		}
		tx.Type = domain.TxType(txType)
		tx.Source = domain.TxSource(source)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *Repository) AccountingEntriesByOrder(ctx context.Context, orderRef string) ([]domain.AccountingEntry, error) {
	query := `
        SELECT id, category, amount_usd, amount_lbp, COALESCE(order_ref, ''), memo, created_by, created_at
        FROM accounting_entries
        WHERE order_ref = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, orderRef)
	if err != nil {
		zap.L().Error("can't get accounting entries", zap.String("order_ref", orderRef), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AccountingEntry
	for rows.Next() {
		var entry domain.AccountingEntry
		var category string
		err := rows.Scan(&entry.ID, &category, &entry.Amount.USD, &entry.Amount.LBP, &entry.OrderRef, &entry.Memo, &entry.CreatedBy, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan accounting entry", zap.Error(err))
			return nil, err
		}
		entry.Category = domain.AccountingCategory(category)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteByOrderRef removes every ledger row tagged with orderRef.
func (r *Repository) DeleteByOrderRef(ctx context.Context, orderRef string) (domain.DeletedRows, error) {
	var deleted domain.DeletedRows
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "DELETE FROM driver_transactions WHERE order_ref = $1", orderRef)
		if err != nil {
			zap.L().Error("can't delete driver transactions", zap.String("order_ref", orderRef), zap.Error(err))
			return err
		}
		deleted.DriverTransactions = tag.RowsAffected()

		tag, err = r.db.Exec(ctx, "DELETE FROM client_transactions WHERE order_ref = $1", orderRef)
		if err != nil {
			zap.L().Error("can't delete client transactions", zap.String("order_ref", orderRef), zap.Error(err))
			return err
		}
		deleted.ClientTransactions = tag.RowsAffected()

		tag, err = r.db.Exec(ctx, "DELETE FROM accounting_entries WHERE order_ref = $1", orderRef)
		if err != nil {
			zap.L().Error("can't delete accounting entries", zap.String("order_ref", orderRef), zap.Error(err))
			return err
		}
		deleted.AccountingEntries = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return domain.DeletedRows{}, err
	}
	return deleted, nil
}

// SumDriverTransactions returns the signed sum of a driver's ledger. Credits count positive.
func (r *Repository) SumDriverTransactions(ctx context.Context, driverID string) (domain.Money, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN type = 'Credit' THEN amount_usd ELSE -amount_usd END), 0),
            COALESCE(SUM(CASE WHEN type = 'Credit' THEN amount_lbp ELSE -amount_lbp END), 0)
        FROM driver_transactions
        WHERE driver_id = $1
    `
	var sum domain.Money
	err := r.db.QueryRow(ctx, query, driverID).Scan(&sum.USD, &sum.LBP)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't sum driver transactions", zap.String("driver_id", driverID), zap.Error(err))
		return domain.Money{}, err
	}
	return sum, nil
}

// ClientBalance derives a client's balance from its transactions. Positive means the company owes the client.
func (r *Repository) ClientBalance(ctx context.Context, clientID string) (domain.Money, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN type = 'Credit' THEN amount_usd ELSE -amount_usd END), 0),
            COALESCE(SUM(CASE WHEN type = 'Credit' THEN amount_lbp ELSE -amount_lbp END), 0)
        FROM client_transactions
        WHERE client_id = $1
    `
	var balance domain.Money
	err := r.db.QueryRow(ctx, query, clientID).Scan(&balance.USD, &balance.LBP)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't compute client balance", zap.String("client_id", clientID), zap.Error(err))
		return domain.Money{}, err
	}
	return balance, nil
}
