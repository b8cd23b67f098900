package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/lock"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/internal/service/ledgerservice"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

const (
	MsgNotDelivered     = "Order is not delivered yet"
	MsgAlreadyProcessed = "Order already processed"
	MsgProcessed        = "Order settled"
)

type OrderRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	MarkDeliverySettled(ctx context.Context, id string, remit domain.RemitStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type StatementRepo interface {
	IsOrderInPaidStatement(ctx context.Context, orderRef string) (bool, error)
}

type Ledger interface {
	GetDriver(ctx context.Context, id string) (*domain.Driver, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	DriverTransactionExists(ctx context.Context, orderRef string) (bool, error)
	PostDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error)
	RecordClientTransaction(ctx context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error)
	RecordAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error)
	RevertOrder(ctx context.Context, orderRef string) (*ledgerservice.Reversal, error)
}

type Cashbox interface {
	ReverseCashOut(ctx context.Context, date time.Time, amount domain.Money, note string) (*domain.CashboxDaily, error)
}

type Service struct {
	orderRepo     OrderRepo
	statementRepo StatementRepo
	ledger        Ledger
	cashbox       Cashbox
	locker        lock.Locker
	txManager     pg.TXManager
}

func New(orderRepo OrderRepo, statementRepo StatementRepo, ledger Ledger, cashbox Cashbox, locker lock.Locker, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:     orderRepo,
		statementRepo: statementRepo,
		ledger:        ledger,
		cashbox:       cashbox,
		locker:        locker,
		txManager:     txManager,
	}
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

func (s *Service) withOrderLock(ctx context.Context, orderID string, fn func() error) error {
	l, err := s.locker.Obtain(ctx, "settlement:"+orderID)
	if errors.Is(err, lock.ErrNotObtained) {
		return &domain.ConcurrencyError{Op: "lock order", Key: orderID}
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(context.WithoutCancel(ctx)); err != nil {
			zap.L().Warn("failed to release order lock", zap.String("order_id", orderID), zap.Error(err))
		}
	}()
	return fn()
}

func (s *Service) getOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("order", id)
	}
	return order, nil
}

// remitStatus is the driver_remit_status the order ends in after settlement.
func remitStatus(order *domain.Order) domain.RemitStatus {
	if order.DriverID == "" {
		return order.DriverRemitStatus
	}
	if order.DriverPaidForClient && order.DriverPaidAmount.HasValue() {
		return domain.RemitPending
	}
	if !order.DriverPaidForClient && order.DeliveryFee.HasValue() {
		return domain.RemitPending
	}
	return order.DriverRemitStatus
}

// ProcessOrderDelivery settles a delivered order exactly once. Calling it again, or on an order
// that is not delivered yet, is a no-op reported in the result rather than an error.
func (s *Service) ProcessOrderDelivery(ctx context.Context, orderID string) (*Result, error) {
	var result *Result
	err := s.withOrderLock(ctx, orderID, func() error {
		var err error
		result, err = s.processOrderDelivery(ctx, orderID)
		return err
	})
	if err != nil {
		zap.L().Error("order settlement failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) processOrderDelivery(ctx context.Context, orderID string) (*Result, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusDelivered {
		return &Result{Success: false, Message: MsgNotDelivered, OrderID: orderID}, nil
	}
	alreadyProcessed := &Result{Success: true, Message: MsgAlreadyProcessed, OrderID: orderID}
	if order.SettlementPath == domain.SettlementDelivered {
		return alreadyProcessed, nil
	}
	exists, err := s.ledger.DriverTransactionExists(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return alreadyProcessed, nil
	}

	claimed := false
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		claimed, err = s.orderRepo.MarkDeliverySettled(ctx, order.ID, remitStatus(order))
		if err != nil || !claimed {
			return err
		}
		return s.settle(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	if !claimed {
		return alreadyProcessed, nil
	}

	zap.L().Info("order settled",
		zap.String("order_id", order.ID),
		zap.String("order_ref", order.OrderID),
		zap.Bool("driver_paid_for_client", order.DriverPaidForClient))
	return &Result{Success: true, Message: MsgProcessed, OrderID: orderID}, nil
}

func (s *Service) settle(ctx context.Context, order *domain.Order) error {
	if order.DriverID != "" {
		if _, err := s.ledger.GetDriver(ctx, order.DriverID); err != nil {
			return err
		}
	}
	if order.ClientID != "" {
		if _, err := s.ledger.GetClient(ctx, order.ClientID); err != nil {
			return err
		}
	}

	if order.DriverPaidForClient {
		if err := s.settleDriverPaid(ctx, order); err != nil {
			return err
		}
	} else {
		if err := s.settleCollected(ctx, order); err != nil {
			return err
		}
	}

	if order.DeliveryFee.HasValue() {
		_, err := s.ledger.RecordAccountingEntry(ctx, &domain.AccountingEntry{
			Category: domain.CategoryDeliveryIncome,
			Amount:   order.DeliveryFee,
			OrderRef: order.OrderID,
			Memo:     "delivery fee " + order.OrderID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// settleCollected handles the cash-on-delivery path: the driver earns the fee and the client owes the goods.
// A company prepaid order already carries its client debit from the prepaid statement.
func (s *Service) settleCollected(ctx context.Context, order *domain.Order) error {
	if order.DriverID != "" && order.DeliveryFee.HasValue() {
		_, err := s.ledger.PostDriverTransaction(ctx, &domain.DriverTransaction{
			DriverID: order.DriverID,
			Type:     domain.TxCredit,
			Amount:   order.DeliveryFee,
			OrderRef: order.OrderID,
			Source:   domain.SourceDelivery,
			Note:     "delivery fee " + order.OrderID,
		})
		if err != nil {
			return err
		}
	}
	if order.ClientID != "" && order.OrderAmount.HasValue() && !order.PrepaidByCompany {
		_, err := s.ledger.RecordClientTransaction(ctx, &domain.ClientTransaction{
			ClientID: order.ClientID,
			Type:     domain.TxDebit,
			Amount:   order.OrderAmount,
			OrderRef: order.OrderID,
			Source:   domain.SourceDelivery,
			Note:     "collected for " + order.OrderID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// settleDriverPaid handles a driver who paid the client out of pocket.
func (s *Service) settleDriverPaid(ctx context.Context, order *domain.Order) error {
	owed := order.OrderAmount.Add(order.DeliveryFee)
	if order.ClientID != "" && owed.HasValue() && !order.PrepaidByCompany {
		_, err := s.ledger.RecordClientTransaction(ctx, &domain.ClientTransaction{
			ClientID: order.ClientID,
			Type:     domain.TxDebit,
			Amount:   owed,
			OrderRef: order.OrderID,
			Source:   domain.SourceDelivery,
			Note:     "driver paid for " + order.OrderID,
		})
		if err != nil {
			return err
		}
	}
	if order.DriverID != "" && order.DriverPaidAmount.HasValue() {
		_, err := s.ledger.PostDriverTransaction(ctx, &domain.DriverTransaction{
			DriverID: order.DriverID,
			Type:     domain.TxDebit,
			Amount:   order.DriverPaidAmount,
			OrderRef: order.OrderID,
			Source:   domain.SourceDelivery,
			Note:     "paid for client on " + order.OrderID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteOrderWithAccounting reverts every ledger effect of the order and deletes it.
// The result message lists each reversal step.
func (s *Service) DeleteOrderWithAccounting(ctx context.Context, orderID string) (*Result, error) {
	var result *Result
	err := s.withOrderLock(ctx, orderID, func() error {
		var err error
		result, err = s.deleteOrder(ctx, orderID)
		return err
	})
	if err != nil {
		zap.L().Error("order deletion failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) deleteOrder(ctx context.Context, orderID string) (*Result, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	paid, err := s.statementRepo.IsOrderInPaidStatement(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, domain.NewValidationError("order", fmt.Sprintf("order %s belongs to a paid statement", order.OrderID))
	}

	var trail []string
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reversal, err := s.ledger.RevertOrder(ctx, order.OrderID)
		if err != nil {
			return err
		}
		for _, adj := range reversal.Wallets {
			trail = append(trail, fmt.Sprintf("driver %s wallet adjusted by %s", adj.DriverID, adj.Delta))
		}

		for _, entry := range reversal.Entries {
			if entry.Category != domain.CategoryPrepaidFloat || !entry.Amount.HasValue() {
				continue
			}
			date := domain.DateOnly(entry.CreatedAt)
			note := "reversal of prepaid order " + order.OrderID
			if _, err := s.cashbox.ReverseCashOut(ctx, date, entry.Amount, note); err != nil {
				return err
			}
			trail = append(trail, fmt.Sprintf("cashbox cash out on %s reduced by %s", date.Format(time.DateOnly), entry.Amount))
		}

		d := reversal.Deleted
		trail = append(trail, fmt.Sprintf("deleted %d driver transactions, %d client transactions, %d accounting entries",
			d.DriverTransactions, d.ClientTransactions, d.AccountingEntries))

		deleted, err := s.orderRepo.Delete(ctx, order.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return &domain.ConcurrencyError{Op: "delete order", Key: order.ID}
		}
		trail = append(trail, "order "+order.OrderID+" deleted")
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order deleted with accounting", zap.String("order_id", order.ID), zap.Strings("trail", trail))
	return &Result{Success: true, Message: strings.Join(trail, "; "), OrderID: orderID}, nil
}
