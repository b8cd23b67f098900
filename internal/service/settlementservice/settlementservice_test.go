package settlementservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/lock"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/internal/service/ledgerservice"
)

type mocks struct {
	orderRepo     *MockOrderRepo
	statementRepo *MockStatementRepo
	ledger        *MockLedger
	cashbox       *MockCashbox
	locker        *lock.MockLocker
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		orderRepo:     NewMockOrderRepo(ctrl),
		statementRepo: NewMockStatementRepo(ctrl),
		ledger:        NewMockLedger(ctrl),
		cashbox:       NewMockCashbox(ctrl),
		locker:        lock.NewMockLocker(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.orderRepo, m.statementRepo, m.ledger, m.cashbox, m.locker, txManager), m
}

func (m mocks) expectLock(ctrl *gomock.Controller, orderID string) {
	held := lock.NewMockLock(ctrl)
	held.EXPECT().Release(gomock.Any()).Return(nil)
	m.locker.EXPECT().Obtain(gomock.Any(), "settlement:"+orderID).Return(held, nil)
}

func deliveredOrder() *domain.Order {
	return &domain.Order{
		ID:             "o-1",
		OrderID:        "ORD-1",
		Status:         domain.OrderStatusDelivered,
		DriverID:       "d-1",
		ClientID:       "c-1",
		OrderAmount:    domain.MoneyFromInt(20, 0),
		DeliveryFee:    domain.MoneyFromInt(5, 0),
		SettlementPath: domain.SettlementNone,
	}
}

func TestProcessOrderDelivery_NoOps(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(m mocks)
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name: "Not delivered yet",
			prepareMock: func(m mocks) {
				order := deliveredOrder()
				order.Status = domain.OrderStatusPickedUp
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
			},
			expectedMessage: MsgNotDelivered,
		},
		{
			name: "Already settled by delivery",
			prepareMock: func(m mocks) {
				order := deliveredOrder()
				order.SettlementPath = domain.SettlementDelivered
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
			},
			expectedSuccess: true,
			expectedMessage: MsgAlreadyProcessed,
		},
		{
			name: "Driver transaction already exists",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(true, nil)
			},
			expectedSuccess: true,
			expectedMessage: MsgAlreadyProcessed,
		},
		{
			name: "Concurrent settlement won the claim",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
				m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(false, nil)
			},
			expectedSuccess: true,
			expectedMessage: MsgAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, m := NewMock(t)
			m.expectLock(ctrl, "o-1")
			tt.prepareMock(m)

			result, err := service.ProcessOrderDelivery(context.Background(), "o-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, result.Success)
			assert.Equal(t, tt.expectedMessage, result.Message)
			assert.Equal(t, "o-1", result.OrderID)
		})
	}
}

func TestProcessOrderDelivery_NormalCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := NewMock(t)
	m.expectLock(ctrl, "o-1")

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
	m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
	m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(true, nil)
	m.ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
	m.ledger.EXPECT().GetClient(gomock.Any(), "c-1").Return(&domain.Client{ID: "c-1"}, nil)
	m.ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
			assert.Equal(t, domain.TxCredit, tx.Type)
			assert.True(t, tx.Amount.Equal(domain.MoneyFromInt(5, 0)))
			assert.Equal(t, "ORD-1", tx.OrderRef)
			return tx, nil
		}).Times(1)
	m.ledger.EXPECT().RecordClientTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error) {
			assert.Equal(t, domain.TxDebit, tx.Type)
			assert.True(t, tx.Amount.Equal(domain.MoneyFromInt(20, 0)))
			return tx, nil
		}).Times(1)
	m.ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AccountingEntry) (*domain.AccountingEntry, error) {
			assert.Equal(t, domain.CategoryDeliveryIncome, e.Category)
			assert.True(t, e.Amount.Equal(domain.MoneyFromInt(5, 0)))
			return e, nil
		}).Times(1)

	result, err := service.ProcessOrderDelivery(context.Background(), "o-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, MsgProcessed, result.Message)
}

func TestProcessOrderDelivery_PrepaidOrderSkipsClientDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := NewMock(t)
	m.expectLock(ctrl, "o-1")
	order := deliveredOrder()
	order.PrepaidByCompany = true
	order.SettlementPath = domain.SettlementPrepaid

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
	m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
	m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(true, nil)
	m.ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
	m.ledger.EXPECT().GetClient(gomock.Any(), "c-1").Return(&domain.Client{ID: "c-1"}, nil)
	m.ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
			return tx, nil
		})
	m.ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AccountingEntry) (*domain.AccountingEntry, error) {
			return e, nil
		})

	result, err := service.ProcessOrderDelivery(context.Background(), "o-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestProcessOrderDelivery_DriverPaidForClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, m := NewMock(t)
	m.expectLock(ctrl, "o-1")
	order := deliveredOrder()
	order.DriverPaidForClient = true
	order.DriverPaidAmount = domain.MoneyFromInt(15, 0)

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
	m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
	m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(true, nil)
	m.ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
	m.ledger.EXPECT().GetClient(gomock.Any(), "c-1").Return(&domain.Client{ID: "c-1"}, nil)
	m.ledger.EXPECT().RecordClientTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error) {
			assert.Equal(t, domain.TxDebit, tx.Type)
			assert.True(t, tx.Amount.Equal(domain.MoneyFromInt(25, 0)))
			return tx, nil
		}).Times(1)
	m.ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
			assert.Equal(t, domain.TxDebit, tx.Type)
			assert.True(t, tx.Amount.Equal(domain.MoneyFromInt(15, 0)))
			return tx, nil
		}).Times(1)
	m.ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AccountingEntry) (*domain.AccountingEntry, error) {
			assert.True(t, e.Amount.Equal(domain.MoneyFromInt(5, 0)))
			return e, nil
		}).Times(1)

	result, err := service.ProcessOrderDelivery(context.Background(), "o-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestProcessOrderDelivery_Failures(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(ctrl *gomock.Controller, m mocks)
		expectedErr error
	}{
		{
			name: "Lock held elsewhere",
			prepareMock: func(_ *gomock.Controller, m mocks) {
				m.locker.EXPECT().Obtain(gomock.Any(), "settlement:o-1").Return(nil, lock.ErrNotObtained)
			},
			expectedErr: domain.ErrConcurrency,
		},
		{
			name: "Unknown order",
			prepareMock: func(ctrl *gomock.Controller, m mocks) {
				m.expectLock(ctrl, "o-1")
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Missing driver aborts the settlement",
			prepareMock: func(ctrl *gomock.Controller, m mocks) {
				m.expectLock(ctrl, "o-1")
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
				m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(true, nil)
				m.ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(nil, domain.NewNotFoundError("driver", "d-1"))
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Ledger write failure",
			prepareMock: func(ctrl *gomock.Controller, m mocks) {
				m.expectLock(ctrl, "o-1")
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.ledger.EXPECT().DriverTransactionExists(gomock.Any(), "ORD-1").Return(false, nil)
				m.orderRepo.EXPECT().MarkDeliverySettled(gomock.Any(), "o-1", domain.RemitPending).Return(true, nil)
				m.ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
				m.ledger.EXPECT().GetClient(gomock.Any(), "c-1").Return(&domain.Client{ID: "c-1"}, nil)
				m.ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, m := NewMock(t)
			tt.prepareMock(ctrl, m)

			result, err := service.ProcessOrderDelivery(context.Background(), "o-1")

			assert.Nil(t, result)
			if errors.Is(tt.expectedErr, domain.ErrConcurrency) || errors.Is(tt.expectedErr, domain.ErrNotFound) {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
		})
	}
}

func TestRemitStatus(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(o *domain.Order)
		expected domain.RemitStatus
	}{
		{name: "Fee on collected order", mutate: func(o *domain.Order) {}, expected: domain.RemitPending},
		{name: "No fee keeps status", mutate: func(o *domain.Order) { o.DeliveryFee = domain.Money{} }, expected: ""},
		{name: "No driver keeps status", mutate: func(o *domain.Order) { o.DriverID = "" }, expected: ""},
		{
			name: "Driver paid amount",
			mutate: func(o *domain.Order) {
				o.DriverPaidForClient = true
				o.DeliveryFee = domain.Money{}
				o.DriverPaidAmount = domain.MoneyFromInt(15, 0)
			},
			expected: domain.RemitPending,
		},
		{
			name: "Collected stays collected without a fee",
			mutate: func(o *domain.Order) {
				o.DeliveryFee = domain.Money{}
				o.DriverRemitStatus = domain.RemitCollected
			},
			expected: domain.RemitCollected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := deliveredOrder()
			tt.mutate(order)
			assert.Equal(t, tt.expected, remitStatus(order))
		})
	}
}

func TestDeleteOrderWithAccounting(t *testing.T) {
	entryTime := time.Date(2024, 3, 2, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		prepareMock func(m mocks)
		expectedErr error
		contains    []string
	}{
		{
			name: "Delivered order is fully reverted",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.statementRepo.EXPECT().IsOrderInPaidStatement(gomock.Any(), "ORD-1").Return(false, nil)
				m.ledger.EXPECT().RevertOrder(gomock.Any(), "ORD-1").Return(&ledgerservice.Reversal{
					Wallets: []ledgerservice.WalletAdjustment{{DriverID: "d-1", Delta: domain.MoneyFromInt(-5, 0)}},
					Entries: []domain.AccountingEntry{{Category: domain.CategoryDeliveryIncome, Amount: domain.MoneyFromInt(5, 0)}},
					Deleted: domain.DeletedRows{DriverTransactions: 1, ClientTransactions: 1, AccountingEntries: 1},
				}, nil)
				m.orderRepo.EXPECT().Delete(gomock.Any(), "o-1").Return(true, nil)
			},
			contains: []string{
				"driver d-1 wallet adjusted by -5.00 USD / 0 LBP",
				"deleted 1 driver transactions, 1 client transactions, 1 accounting entries",
				"order ORD-1 deleted",
			},
		},
		{
			name: "Prepaid float goes back to the cashbox day it left",
			prepareMock: func(m mocks) {
				order := deliveredOrder()
				order.PrepaidByCompany = true
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
				m.statementRepo.EXPECT().IsOrderInPaidStatement(gomock.Any(), "ORD-1").Return(false, nil)
				m.ledger.EXPECT().RevertOrder(gomock.Any(), "ORD-1").Return(&ledgerservice.Reversal{
					Entries: []domain.AccountingEntry{{Category: domain.CategoryPrepaidFloat, Amount: domain.MoneyFromInt(15, 0), CreatedAt: entryTime}},
				}, nil)
				m.cashbox.EXPECT().ReverseCashOut(gomock.Any(), domain.DateOnly(entryTime), gomock.Any(), "reversal of prepaid order ORD-1").
					Return(&domain.CashboxDaily{}, nil)
				m.orderRepo.EXPECT().Delete(gomock.Any(), "o-1").Return(true, nil)
			},
			contains: []string{"cashbox cash out on 2024-03-02 reduced by 15.00 USD / 0 LBP"},
		},
		{
			name: "Order in a paid statement",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.statementRepo.EXPECT().IsOrderInPaidStatement(gomock.Any(), "ORD-1").Return(true, nil)
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "Unknown order",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Row vanished before delete",
			prepareMock: func(m mocks) {
				m.orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(deliveredOrder(), nil)
				m.statementRepo.EXPECT().IsOrderInPaidStatement(gomock.Any(), "ORD-1").Return(false, nil)
				m.ledger.EXPECT().RevertOrder(gomock.Any(), "ORD-1").Return(&ledgerservice.Reversal{}, nil)
				m.orderRepo.EXPECT().Delete(gomock.Any(), "o-1").Return(false, nil)
			},
			expectedErr: domain.ErrConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, m := NewMock(t)
			m.expectLock(ctrl, "o-1")
			tt.prepareMock(m)

			result, err := service.DeleteOrderWithAccounting(context.Background(), "o-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.True(t, result.Success)
			for _, part := range tt.contains {
				assert.Contains(t, result.Message, part)
			}
		})
	}
}
