package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/pkg/auth"
)

type mocks struct {
	driverRepo *MockDriverRepo
	clientRepo *MockClientRepo
	ledgerRepo *MockLedgerRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		driverRepo: NewMockDriverRepo(ctrl),
		clientRepo: NewMockClientRepo(ctrl),
		ledgerRepo: NewMockLedgerRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.driverRepo, m.clientRepo, m.ledgerRepo, txManager), m
}

func TestGetDriver(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Driver exists",
			prepareMock: func() {
				m.driverRepo.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
			},
		},
		{
			name: "Driver missing",
			prepareMock: func() {
				m.driverRepo.EXPECT().GetDriver(gomock.Any(), "d-1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				m.driverRepo.EXPECT().GetDriver(gomock.Any(), "d-1").Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			driver, err := service.GetDriver(context.Background(), "d-1")

			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, "d-1", driver.ID)
			case errors.Is(tt.expectedErr, domain.ErrNotFound):
				assert.ErrorIs(t, err, domain.ErrNotFound)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
		})
	}
}

func TestPostDriverTransaction(t *testing.T) {
	service, m := NewMock(t)
	ctx := auth.WithActor(context.Background(), "cashier")

	tests := []struct {
		name        string
		tx          domain.DriverTransaction
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Credit raises the wallet",
			tx:   domain.DriverTransaction{DriverID: "d-1", Type: domain.TxCredit, Amount: domain.MoneyFromInt(5, 0), OrderRef: "ORD-1"},
			prepareMock: func() {
				m.ledgerRepo.EXPECT().InsertDriverTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
						assert.NotEmpty(t, tx.ID)
						assert.Equal(t, "cashier", tx.CreatedBy)
						return tx, nil
					})
				m.driverRepo.EXPECT().AdjustWallet(gomock.Any(), "d-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, delta domain.Money) (*domain.Driver, error) {
						assert.True(t, delta.Equal(domain.MoneyFromInt(5, 0)))
						return &domain.Driver{ID: "d-1", Wallet: delta}, nil
					})
			},
		},
		{
			name: "Debit lowers the wallet",
			tx:   domain.DriverTransaction{DriverID: "d-1", Type: domain.TxDebit, Amount: domain.MoneyFromInt(15, 0)},
			prepareMock: func() {
				m.ledgerRepo.EXPECT().InsertDriverTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
						return tx, nil
					})
				m.driverRepo.EXPECT().AdjustWallet(gomock.Any(), "d-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, delta domain.Money) (*domain.Driver, error) {
						assert.True(t, delta.Equal(domain.MoneyFromInt(-15, 0)))
						return &domain.Driver{ID: "d-1", Wallet: delta}, nil
					})
			},
		},
		{
			name:        "Zero amount is rejected",
			tx:          domain.DriverTransaction{DriverID: "d-1", Type: domain.TxCredit},
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Unknown type is rejected",
			tx:          domain.DriverTransaction{DriverID: "d-1", Type: "Refund", Amount: domain.MoneyFromInt(1, 0)},
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "Insert failure leaves the wallet alone",
			tx:   domain.DriverTransaction{DriverID: "d-1", Type: domain.TxCredit, Amount: domain.MoneyFromInt(5, 0)},
			prepareMock: func() {
				m.ledgerRepo.EXPECT().InsertDriverTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name: "Wallet failure surfaces",
			tx:   domain.DriverTransaction{DriverID: "d-9", Type: domain.TxCredit, Amount: domain.MoneyFromInt(5, 0)},
			prepareMock: func() {
				m.ledgerRepo.EXPECT().InsertDriverTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
						return tx, nil
					})
				m.driverRepo.EXPECT().AdjustWallet(gomock.Any(), "d-9", gomock.Any()).
					Return(nil, &domain.ConcurrencyError{Op: "adjust wallet", Key: "d-9"})
			},
			expectedErr: domain.ErrConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tx := tt.tx

			result, err := service.PostDriverTransaction(ctx, &tx)

			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
				assert.NotNil(t, result)
			case errors.Is(tt.expectedErr, domain.ErrValidation), errors.Is(tt.expectedErr, domain.ErrConcurrency):
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, result)
			}
		})
	}
}

func TestRecordClientTransaction(t *testing.T) {
	service, m := NewMock(t)

	m.ledgerRepo.EXPECT().InsertClientTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error) {
			assert.Equal(t, auth.SystemActor, tx.CreatedBy)
			assert.NotEmpty(t, tx.ID)
			return tx, nil
		})

	tx, err := service.RecordClientTransaction(context.Background(), &domain.ClientTransaction{
		ClientID: "c-1",
		Type:     domain.TxDebit,
		Amount:   domain.MoneyFromInt(20, 0),
		OrderRef: "ORD-1",
		Source:   domain.SourceDelivery,
	})

	assert.NoError(t, err)
	assert.Equal(t, "c-1", tx.ClientID)
}

func TestRecordAccountingEntry(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.RecordAccountingEntry(context.Background(), &domain.AccountingEntry{
		Category: domain.CategoryDeliveryIncome,
		Amount:   domain.MoneyFromInt(-5, 0),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRevertOrder(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedDelta map[string]domain.Money
		expectedErr   bool
	}{
		{
			name: "Fee credit is taken back",
			prepareMock: func() {
				m.ledgerRepo.EXPECT().DriverTransactionsByOrder(gomock.Any(), "ORD-1").Return([]domain.DriverTransaction{
					{DriverID: "d-1", Type: domain.TxCredit, Amount: domain.MoneyFromInt(5, 0)},
				}, nil)
				m.driverRepo.EXPECT().AdjustWallet(gomock.Any(), "d-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, delta domain.Money) (*domain.Driver, error) {
						return &domain.Driver{ID: "d-1"}, nil
					})
				m.ledgerRepo.EXPECT().AccountingEntriesByOrder(gomock.Any(), "ORD-1").Return([]domain.AccountingEntry{
					{Category: domain.CategoryDeliveryIncome, Amount: domain.MoneyFromInt(5, 0)},
				}, nil)
				m.ledgerRepo.EXPECT().DeleteByOrderRef(gomock.Any(), "ORD-1").Return(domain.DeletedRows{DriverTransactions: 1, ClientTransactions: 1, AccountingEntries: 1}, nil)
			},
			expectedDelta: map[string]domain.Money{"d-1": domain.MoneyFromInt(-5, 0)},
		},
		{
			name: "Driver paid debit is credited back",
			prepareMock: func() {
				m.ledgerRepo.EXPECT().DriverTransactionsByOrder(gomock.Any(), "ORD-1").Return([]domain.DriverTransaction{
					{DriverID: "d-1", Type: domain.TxDebit, Amount: domain.MoneyFromInt(15, 0)},
				}, nil)
				m.driverRepo.EXPECT().AdjustWallet(gomock.Any(), "d-1", gomock.Any()).Return(&domain.Driver{ID: "d-1"}, nil)
				m.ledgerRepo.EXPECT().AccountingEntriesByOrder(gomock.Any(), "ORD-1").Return(nil, nil)
				m.ledgerRepo.EXPECT().DeleteByOrderRef(gomock.Any(), "ORD-1").Return(domain.DeletedRows{DriverTransactions: 1}, nil)
			},
			expectedDelta: map[string]domain.Money{"d-1": domain.MoneyFromInt(15, 0)},
		},
		{
			name: "Entries that cancel out skip the wallet",
			prepareMock: func() {
				m.ledgerRepo.EXPECT().DriverTransactionsByOrder(gomock.Any(), "ORD-1").Return([]domain.DriverTransaction{
					{DriverID: "d-1", Type: domain.TxDebit, Amount: domain.MoneyFromInt(10, 0)},
					{DriverID: "d-1", Type: domain.TxCredit, Amount: domain.MoneyFromInt(10, 0)},
				}, nil)
				m.ledgerRepo.EXPECT().AccountingEntriesByOrder(gomock.Any(), "ORD-1").Return(nil, nil)
				m.ledgerRepo.EXPECT().DeleteByOrderRef(gomock.Any(), "ORD-1").Return(domain.DeletedRows{DriverTransactions: 2}, nil)
			},
			expectedDelta: map[string]domain.Money{},
		},
		{
			name: "Delete failure aborts",
			prepareMock: func() {
				m.ledgerRepo.EXPECT().DriverTransactionsByOrder(gomock.Any(), "ORD-1").Return(nil, nil)
				m.ledgerRepo.EXPECT().AccountingEntriesByOrder(gomock.Any(), "ORD-1").Return(nil, nil)
				m.ledgerRepo.EXPECT().DeleteByOrderRef(gomock.Any(), "ORD-1").Return(domain.DeletedRows{}, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			reversal, err := service.RevertOrder(context.Background(), "ORD-1")

			if tt.expectedErr {
				assert.Error(t, err)
				assert.Nil(t, reversal)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, reversal.Wallets, len(tt.expectedDelta))
			for _, adj := range reversal.Wallets {
				assert.True(t, tt.expectedDelta[adj.DriverID].Equal(adj.Delta))
			}
		})
	}
}

func TestClientBalance(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Unknown client", func(t *testing.T) {
		m.clientRepo.EXPECT().GetClient(gomock.Any(), "c-1").Return(nil, nil)

		_, err := service.ClientBalance(context.Background(), "c-1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Derived from transactions", func(t *testing.T) {
		m.clientRepo.EXPECT().GetClient(gomock.Any(), "c-1").Return(&domain.Client{ID: "c-1"}, nil)
		m.ledgerRepo.EXPECT().ClientBalance(gomock.Any(), "c-1").Return(domain.MoneyFromInt(-20, 0), nil)

		balance, err := service.ClientBalance(context.Background(), "c-1")

		assert.NoError(t, err)
		assert.True(t, balance.Equal(domain.MoneyFromInt(-20, 0)))
	})
}

func TestReconcileDriver(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name     string
		wallet   domain.Money
		sum      domain.Money
		balanced bool
	}{
		{name: "Balanced", wallet: domain.MoneyFromInt(5, 1000), sum: domain.MoneyFromInt(5, 1000), balanced: true},
		{name: "Drifted", wallet: domain.MoneyFromInt(5, 0), sum: domain.MoneyFromInt(0, 0), balanced: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.driverRepo.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1", Wallet: tt.wallet}, nil)
			m.ledgerRepo.EXPECT().SumDriverTransactions(gomock.Any(), "d-1").Return(tt.sum, nil)

			rec, err := service.ReconcileDriver(context.Background(), "d-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.balanced, rec.Balanced())
		})
	}
}
