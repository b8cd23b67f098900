package statementrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

const statementColumns = `
        id, statement_id, kind, subject_id, period_from, period_to, order_refs,
        total_collected_usd, total_collected_lbp, total_delivery_fees_usd, total_delivery_fees_lbp,
        total_driver_paid_usd, total_driver_paid_lbp, net_due_usd, net_due_lbp,
        status, payment_method, payment_notes, issued_date, paid_date, created_by`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) NextStatementNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT nextval('statement_number_seq')").Scan(&n); err != nil {
		zap.L().Error("can't allocate statement number", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) Create(ctx context.Context, st *domain.Statement) (*domain.Statement, error) {
	query := `
        INSERT INTO statements (
            id, statement_id, kind, subject_id, period_from, period_to, order_refs,
            total_collected_usd, total_collected_lbp, total_delivery_fees_usd, total_delivery_fees_lbp,
            total_driver_paid_usd, total_driver_paid_lbp, net_due_usd, net_due_lbp,
            status, payment_method, payment_notes, issued_date, paid_date, created_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
    `
	t := st.Totals
	_, err := r.db.Exec(ctx, query,
		st.ID, st.StatementID, string(st.Kind), st.SubjectID, st.PeriodFrom, st.PeriodTo, st.OrderRefs,
		t.Collected.USD, t.Collected.LBP, t.DeliveryFees.USD, t.DeliveryFees.LBP,
		t.DriverPaidRefund.USD, t.DriverPaidRefund.LBP, t.NetDue.USD, t.NetDue.LBP,
		string(st.Status), st.PaymentMethod, st.PaymentNotes, st.IssuedDate, st.PaidDate, st.CreatedBy,
	)
	if err != nil {
		zap.L().Error("can't save statement", zap.String("statement_id", st.StatementID), zap.Error(err))
		return nil, err
	}
	return st, nil
}

// GetByID accepts either the row id or the human statement number.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Statement, error) {
	query := `SELECT ` + statementColumns + ` FROM statements WHERE id = $1 OR statement_id = $1`
	var (
		st           domain.Statement
		kind, status string
	)
	t := &st.Totals
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.StatementID, &kind, &st.SubjectID, &st.PeriodFrom, &st.PeriodTo, &st.OrderRefs,
		&t.Collected.USD, &t.Collected.LBP, &t.DeliveryFees.USD, &t.DeliveryFees.LBP,
		&t.DriverPaidRefund.USD, &t.DriverPaidRefund.LBP, &t.NetDue.USD, &t.NetDue.LBP,
		&status, &st.PaymentMethod, &st.PaymentNotes, &st.IssuedDate, &st.PaidDate, &st.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find statement", zap.String("statement_id", id), zap.Error(err))
		return nil, err
	}
	st.Kind = domain.StatementKind(kind)
	st.Status = domain.StatementStatus(status)
	return &st, nil
}

// PaidOrderRefs lists order references already covered by paid statements of kind for the subject.
func (r *Repository) PaidOrderRefs(ctx context.Context, kind domain.StatementKind, subjectID string) ([]string, error) {
	query := `
        SELECT DISTINCT unnest(order_refs)
        FROM statements
        WHERE kind = $1 AND subject_id = $2 AND status = 'paid'
    `
	rows, err := r.db.Query(ctx, query, string(kind), subjectID)
	if err != nil {
		zap.L().Error("can't list paid order refs", zap.String("subject_id", subjectID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			zap.L().Error("can't scan order ref", zap.Error(err))
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// MarkPaid moves an unpaid statement to paid. It reports false when the statement was not unpaid.
func (r *Repository) MarkPaid(ctx context.Context, id, method, notes string, paidAt time.Time) (bool, error) {
	query := `
        UPDATE statements
        SET status = 'paid', payment_method = $2, payment_notes = $3, paid_date = $4
        WHERE id = $1 AND status = 'unpaid'
    `
	tag, err := r.db.Exec(ctx, query, id, method, notes, paidAt)
	if err != nil {
		zap.L().Error("failed to mark statement paid", zap.String("statement_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// IsOrderInPaidStatement reports whether a paid driver or client statement lists the order.
// Prepaid statements are issued paid and do not pin their orders.
func (r *Repository) IsOrderInPaidStatement(ctx context.Context, orderRef string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM statements WHERE status = 'paid' AND kind IN ('driver', 'client') AND $1 = ANY(order_refs))", orderRef).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check paid statements", zap.String("order_ref", orderRef), zap.Error(err))
		return false, err
	}
	return exists, nil
}
