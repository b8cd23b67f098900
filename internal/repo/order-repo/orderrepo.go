package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

const orderColumns = `
        id, order_id, status, fulfillment, client_fee_rule,
        COALESCE(driver_id, ''), COALESCE(client_id, ''),
        order_amount_usd, order_amount_lbp, delivery_fee_usd, delivery_fee_lbp,
        driver_paid_for_client, driver_paid_amount_usd, driver_paid_amount_lbp, driver_remit_status,
        prepaid_by_company, prepaid_amount_usd, prepaid_amount_lbp, settlement_path,
        delivered_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order                        domain.Order
		status, fulfillment, feeRule string
		remitStatus, settlementPath  string
	)
	err := row.Scan(
		&order.ID, &order.OrderID, &status, &fulfillment, &feeRule,
		&order.DriverID, &order.ClientID,
		&order.OrderAmount.USD, &order.OrderAmount.LBP, &order.DeliveryFee.USD, &order.DeliveryFee.LBP,
		&order.DriverPaidForClient, &order.DriverPaidAmount.USD, &order.DriverPaidAmount.LBP, &remitStatus,
		&order.PrepaidByCompany, &order.PrepaidAmount.USD, &order.PrepaidAmount.LBP, &settlementPath,
		&order.DeliveredAt, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.Fulfillment = domain.Fulfillment(fulfillment)
	order.ClientFeeRule = domain.FeeRule(feeRule)
	order.DriverRemitStatus = domain.RemitStatus(remitStatus)
	order.SettlementPath = domain.SettlementPath(settlementPath)
	return &order, nil
}

func (r *Repository) collect(ctx context.Context, op, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.String("op", op), zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ANY($1) ORDER BY created_at`
	return r.collect(ctx, "get by ids", query, ids)
}

// MarkDeliverySettled claims the order for the delivery flow. It reports false when another
// settlement already claimed it, which callers treat as already processed.
func (r *Repository) MarkDeliverySettled(ctx context.Context, id string, remit domain.RemitStatus) (bool, error) {
	query := `
        UPDATE orders
        SET settlement_path = 'delivered', driver_remit_status = $2
        WHERE id = $1 AND settlement_path IN ('none', 'prepaid')
    `
	tag, err := r.db.Exec(ctx, query, id, string(remit))
	if err != nil {
		zap.L().Error("failed to mark order settled", zap.String("order_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkPrepaid claims an unsettled order for the prepaid flow.
func (r *Repository) MarkPrepaid(ctx context.Context, id string, amount domain.Money) (bool, error) {
	query := `
        UPDATE orders
        SET settlement_path = 'prepaid', prepaid_by_company = TRUE, prepaid_amount_usd = $2, prepaid_amount_lbp = $3
        WHERE id = $1 AND settlement_path = 'none' AND driver_paid_for_client = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id, amount.USD, amount.LBP)
	if err != nil {
		zap.L().Error("failed to mark order prepaid", zap.String("order_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindPendingRemit returns delivered orders whose driver still holds the cash, delivered within [from, to].
func (r *Repository) FindPendingRemit(ctx context.Context, driverID string, from, to time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE driver_id = $1 AND status = 'Delivered' AND driver_remit_status = 'Pending'
            AND delivered_at >= $2 AND delivered_at < $3
        ORDER BY delivered_at`
	return r.collect(ctx, "pending remit", query, driverID, from, to.AddDate(0, 0, 1))
}

// FindDeliveredForClient returns a client's orders settled by delivery within [from, to], excluding prepaid ones.
func (r *Repository) FindDeliveredForClient(ctx context.Context, clientID string, from, to time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
        FROM orders
        WHERE client_id = $1 AND status = 'Delivered' AND settlement_path = 'delivered' AND prepaid_by_company = FALSE
            AND delivered_at >= $2 AND delivered_at < $3
        ORDER BY delivered_at`
	return r.collect(ctx, "delivered for client", query, clientID, from, to.AddDate(0, 0, 1))
}

func (r *Repository) SetRemitStatus(ctx context.Context, orderRefs []string, status domain.RemitStatus) (int64, error) {
	tag, err := r.db.Exec(ctx, "UPDATE orders SET driver_remit_status = $1 WHERE order_id = ANY($2)", string(status), orderRefs)
	if err != nil {
		zap.L().Error("failed to update remit status", zap.Strings("order_refs", orderRefs), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		zap.L().Error("failed to delete order", zap.String("order_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
