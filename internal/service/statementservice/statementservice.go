package statementservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/pkg/auth"
)

//go:generate mockgen -source=statementservice.go -destination=mock_statementservice.go -package=statementservice

const PrepaidPaymentMethod = "cashbox"

type OrderRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Order, error)
	MarkPrepaid(ctx context.Context, id string, amount domain.Money) (bool, error)
	FindPendingRemit(ctx context.Context, driverID string, from, to time.Time) ([]domain.Order, error)
	FindDeliveredForClient(ctx context.Context, clientID string, from, to time.Time) ([]domain.Order, error)
	SetRemitStatus(ctx context.Context, orderRefs []string, status domain.RemitStatus) (int64, error)
}

type StatementRepo interface {
	NextStatementNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, st *domain.Statement) (*domain.Statement, error)
	GetByID(ctx context.Context, id string) (*domain.Statement, error)
	PaidOrderRefs(ctx context.Context, kind domain.StatementKind, subjectID string) ([]string, error)
	MarkPaid(ctx context.Context, id, method, notes string, paidAt time.Time) (bool, error)
}

type Ledger interface {
	GetDriver(ctx context.Context, id string) (*domain.Driver, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	RecordClientTransaction(ctx context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error)
	RecordAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error)
}

type Cashbox interface {
	ApplyDelta(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error)
}

type Service struct {
	orderRepo     OrderRepo
	statementRepo StatementRepo
	ledger        Ledger
	cashbox       Cashbox
	txManager     pg.TXManager
	now           func() time.Time
}

func New(orderRepo OrderRepo, statementRepo StatementRepo, ledger Ledger, cashbox Cashbox, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:     orderRepo,
		statementRepo: statementRepo,
		ledger:        ledger,
		cashbox:       cashbox,
		txManager:     txManager,
		now:           time.Now,
	}
}

var prefixes = map[domain.StatementKind]string{
	domain.StatementDriver:  "DS",
	domain.StatementClient:  "CS",
	domain.StatementPrepaid: "PS",
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return domain.NewValidationError("period", "period_from and period_to are required")
	}
	if to.Before(from) {
		return domain.NewValidationError("period", "period_to is before period_from")
	}
	return nil
}

// excludePaid drops orders already settled by a paid statement of the same kind and subject.
// Orders sitting in unpaid statements are kept.
func (s *Service) excludePaid(ctx context.Context, kind domain.StatementKind, subjectID string, orders []domain.Order) ([]domain.Order, error) {
	refs, err := s.statementRepo.PaidOrderRefs(ctx, kind, subjectID)
	if err != nil {
		return nil, err
	}
	paid := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		paid[ref] = struct{}{}
	}
	eligible := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := paid[o.OrderID]; ok {
			continue
		}
		eligible = append(eligible, o)
	}
	return eligible, nil
}

func orderRefs(orders []domain.Order) []string {
	refs := make([]string, 0, len(orders))
	for _, o := range orders {
		refs = append(refs, o.OrderID)
	}
	return refs
}

func (s *Service) create(ctx context.Context, st *domain.Statement) (*domain.Statement, error) {
	n, err := s.statementRepo.NextStatementNumber(ctx)
	if err != nil {
		return nil, err
	}
	st.ID = uuid.NewString()
	st.StatementID = fmt.Sprintf("%s-%06d", prefixes[st.Kind], n)
	st.CreatedBy = auth.ActorFromContext(ctx)
	if st.IssuedDate.IsZero() {
		st.IssuedDate = s.now()
	}
	return s.statementRepo.Create(ctx, st)
}

// IssueDriverStatement snapshots the driver's pending remittances delivered within [from, to].
func (s *Service) IssueDriverStatement(ctx context.Context, driverID string, from, to time.Time) (*domain.Statement, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	if _, err := s.ledger.GetDriver(ctx, driverID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindPendingRemit(ctx, driverID, from, to)
	if err != nil {
		return nil, err
	}
	orders, err = s.excludePaid(ctx, domain.StatementDriver, driverID, orders)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.NewValidationError("orders", "no pending orders for driver in period")
	}

	st, err := s.create(ctx, &domain.Statement{
		Kind:       domain.StatementDriver,
		SubjectID:  driverID,
		PeriodFrom: from,
		PeriodTo:   to,
		OrderRefs:  orderRefs(orders),
		Totals:     DriverTotals(orders),
		Status:     domain.StatementUnpaid,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("driver statement issued",
		zap.String("statement_id", st.StatementID), zap.String("driver_id", driverID), zap.Int("orders", len(orders)))
	return st, nil
}

// IssueClientStatement snapshots what the company owes the client for orders delivered within [from, to].
func (s *Service) IssueClientStatement(ctx context.Context, clientID string, from, to time.Time) (*domain.Statement, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	if _, err := s.ledger.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindDeliveredForClient(ctx, clientID, from, to)
	if err != nil {
		return nil, err
	}
	orders, err = s.excludePaid(ctx, domain.StatementClient, clientID, orders)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.NewValidationError("orders", "no delivered orders for client in period")
	}

	st, err := s.create(ctx, &domain.Statement{
		Kind:       domain.StatementClient,
		SubjectID:  clientID,
		PeriodFrom: from,
		PeriodTo:   to,
		OrderRefs:  orderRefs(orders),
		Totals:     ClientTotals(orders),
		Status:     domain.StatementUnpaid,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("client statement issued",
		zap.String("statement_id", st.StatementID), zap.String("client_id", clientID), zap.Int("orders", len(orders)))
	return st, nil
}

func (s *Service) prepaidOrders(ctx context.Context, clientID string, orderIDs []string) ([]domain.Order, error) {
	seen := make(map[string]struct{}, len(orderIDs))
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("order_ids", "at least one order is required")
	}

	orders, err := s.orderRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	found := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		found[o.ID] = struct{}{}
		switch {
		case o.ClientID != clientID:
			return nil, domain.NewValidationError("order_ids", fmt.Sprintf("order %s belongs to another client", o.OrderID))
		case o.SettlementPath != domain.SettlementNone:
			return nil, domain.NewValidationError("order_ids", fmt.Sprintf("order %s is already settled (%s)", o.OrderID, o.SettlementPath))
		case o.DriverPaidForClient:
			return nil, domain.NewValidationError("order_ids", fmt.Sprintf("order %s was paid by the driver", o.OrderID))
		case PrepaidNet(o).IsNegative():
			return nil, domain.NewValidationError("order_ids", fmt.Sprintf("order %s fee exceeds its amount", o.OrderID))
		}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, domain.NewNotFoundError("order", id)
		}
	}
	return orders, nil
}

// IssuePrepaidStatement advances the goods value minus fees to the client out of the cashbox.
// Each order moves to the prepaid settlement path so a later delivery does not debit the client twice.
func (s *Service) IssuePrepaidStatement(ctx context.Context, clientID string, orderIDs []string) (*domain.Statement, error) {
	if _, err := s.ledger.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	orders, err := s.prepaidOrders(ctx, clientID, orderIDs)
	if err != nil {
		return nil, err
	}
	totals := PrepaidTotals(orders)
	if totals.NetDue.IsNegative() {
		return nil, domain.NewValidationError("net_due", "must not be negative")
	}

	now := s.now()
	today := domain.DateOnly(now)
	var st *domain.Statement
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, o := range orders {
			if err := s.prepay(ctx, o); err != nil {
				return err
			}
		}

		var err error
		st, err = s.create(ctx, &domain.Statement{
			Kind:          domain.StatementPrepaid,
			SubjectID:     clientID,
			PeriodFrom:    today,
			PeriodTo:      today,
			OrderRefs:     orderRefs(orders),
			Totals:        totals,
			Status:        domain.StatementPaid,
			PaymentMethod: PrepaidPaymentMethod,
			IssuedDate:    now,
			PaidDate:      &now,
		})
		if err != nil {
			return err
		}

		if totals.NetDue.HasValue() {
			_, err = s.cashbox.ApplyDelta(ctx, today, domain.CashboxDelta{CashOut: totals.NetDue}, "prepaid statement "+st.StatementID)
		}
		return err
	})
	if err != nil {
		zap.L().Error("prepaid statement failed", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("prepaid statement issued",
		zap.String("statement_id", st.StatementID), zap.String("client_id", clientID), zap.Stringer("net_due", totals.NetDue))
	return st, nil
}

func (s *Service) prepay(ctx context.Context, o domain.Order) error {
	net := PrepaidNet(o)
	claimed, err := s.orderRepo.MarkPrepaid(ctx, o.ID, net)
	if err != nil {
		return err
	}
	if !claimed {
		return &domain.ConcurrencyError{Op: "mark prepaid", Key: o.ID}
	}

	if owed := o.OrderAmount.Add(o.DeliveryFee); owed.HasValue() {
		_, err := s.ledger.RecordClientTransaction(ctx, &domain.ClientTransaction{
			ClientID: o.ClientID,
			Type:     domain.TxDebit,
			Amount:   owed,
			OrderRef: o.OrderID,
			Source:   domain.SourcePrepaid,
			Note:     "prepaid " + o.OrderID,
		})
		if err != nil {
			return err
		}
	}
	if net.HasValue() {
		_, err := s.ledger.RecordAccountingEntry(ctx, &domain.AccountingEntry{
			Category: domain.CategoryPrepaidFloat,
			Amount:   net,
			OrderRef: o.OrderID,
			Memo:     "prepaid float " + o.OrderID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetStatement(ctx context.Context, id string) (*domain.Statement, error) {
	st, err := s.statementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.NewNotFoundError("statement", id)
	}
	return st, nil
}

// MarkPaid moves an unpaid statement to paid. Paying a driver statement also marks its orders' remittance collected.
func (s *Service) MarkPaid(ctx context.Context, id, method, notes string) (*domain.Statement, error) {
	st, err := s.GetStatement(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Status != domain.StatementUnpaid {
		return nil, domain.NewValidationError("status", fmt.Sprintf("statement %s is %s", st.StatementID, st.Status))
	}

	paidAt := s.now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.statementRepo.MarkPaid(ctx, st.ID, method, notes, paidAt)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("status", fmt.Sprintf("statement %s is no longer unpaid", st.StatementID))
		}
		if st.Kind == domain.StatementDriver && len(st.OrderRefs) > 0 {
			_, err = s.orderRepo.SetRemitStatus(ctx, st.OrderRefs, domain.RemitCollected)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	st.Status = domain.StatementPaid
	st.PaymentMethod = method
	st.PaymentNotes = notes
	st.PaidDate = &paidAt
	zap.L().Info("statement paid", zap.String("statement_id", st.StatementID), zap.String("method", method))
	return st, nil
}
