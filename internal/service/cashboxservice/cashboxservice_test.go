package cashboxservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

var fixedNow = time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockCashboxRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	repo := NewMockCashboxRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(repo, ledger, txManager)
	service.now = func() time.Time { return fixedNow }
	return service, repo, ledger
}

func TestApplyDelta(t *testing.T) {
	service, repo, _ := NewMock(t)
	day := domain.DateOnly(fixedNow)

	tests := []struct {
		name        string
		delta       domain.CashboxDelta
		prepareMock func()
		expectedErr error
	}{
		{
			name:  "Delta goes to the truncated date",
			delta: domain.CashboxDelta{CashIn: domain.MoneyFromInt(100, 0), CashOut: domain.MoneyFromInt(0, 0)},
			prepareMock: func() {
				repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 till").
					Return(&domain.CashboxDaily{Date: day, Closing: domain.MoneyFromInt(100, 0)}, nil)
			},
		},
		{
			name:        "Negative cash in",
			delta:       domain.CashboxDelta{CashIn: domain.MoneyFromInt(-1, 0)},
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Negative cash out",
			delta:       domain.CashboxDelta{CashOut: domain.MoneyFromInt(0, -1000)},
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:  "Repository error",
			delta: domain.CashboxDelta{CashIn: domain.MoneyFromInt(1, 0)},
			prepareMock: func() {
				repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 till").Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ApplyDelta(context.Background(), fixedNow, tt.delta, "till")

			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
				assert.Equal(t, day, result.Date)
			case errors.Is(tt.expectedErr, domain.ErrValidation):
				assert.ErrorIs(t, err, domain.ErrValidation)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
		})
	}
}

func TestReverseCashOut(t *testing.T) {
	service, repo, _ := NewMock(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 reverse").
		DoAndReturn(func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
			assert.True(t, delta.CashOut.Equal(domain.MoneyFromInt(-15, 0)))
			assert.False(t, delta.CashIn.HasValue())
			return &domain.CashboxDaily{Date: day}, nil
		})

	_, err := service.ReverseCashOut(context.Background(), day.Add(9*time.Hour), domain.MoneyFromInt(15, 0), "reverse")

	assert.NoError(t, err)
}

func TestGetDay(t *testing.T) {
	service, repo, _ := NewMock(t)
	day := domain.DateOnly(fixedNow)

	t.Run("Empty day is zero", func(t *testing.T) {
		repo.EXPECT().GetDay(gomock.Any(), day).Return(nil, nil)

		result, err := service.GetDay(context.Background(), fixedNow)

		assert.NoError(t, err)
		assert.Equal(t, day, result.Date)
		assert.True(t, result.Closing.IsZero())
	})

	t.Run("Stored day", func(t *testing.T) {
		repo.EXPECT().GetDay(gomock.Any(), day).Return(&domain.CashboxDaily{Date: day, Closing: domain.MoneyFromInt(40, 0)}, nil)

		result, err := service.GetDay(context.Background(), fixedNow)

		assert.NoError(t, err)
		assert.True(t, result.Closing.Equal(domain.MoneyFromInt(40, 0)))
	})
}

func TestOpenDay(t *testing.T) {
	service, repo, _ := NewMock(t)
	day := domain.DateOnly(fixedNow)

	repo.EXPECT().CarryForward(gomock.Any(), day).Return(&domain.CashboxDaily{Date: day, Opening: domain.MoneyFromInt(120, 0)}, nil)

	result, err := service.OpenDay(context.Background(), fixedNow)

	assert.NoError(t, err)
	assert.True(t, result.Opening.Equal(domain.MoneyFromInt(120, 0)))
}

func TestCapital(t *testing.T) {
	service, repo, ledger := NewMock(t)
	day := domain.DateOnly(fixedNow)
	amount := domain.MoneyFromInt(1000, 0)

	t.Run("Injection is cash in", func(t *testing.T) {
		ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.AccountingEntry) (*domain.AccountingEntry, error) {
				assert.Equal(t, domain.CategoryCapitalInjection, e.Category)
				return e, nil
			})
		repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 CapitalInjection: owner").
			DoAndReturn(func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
				assert.True(t, delta.CashIn.Equal(amount))
				return &domain.CashboxDaily{Date: day}, nil
			})

		movement, err := service.InjectCapital(context.Background(), amount, "owner")

		assert.NoError(t, err)
		assert.NotNil(t, movement.Entry)
		assert.NotNil(t, movement.Day)
	})

	t.Run("Withdrawal is cash out", func(t *testing.T) {
		ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.AccountingEntry) (*domain.AccountingEntry, error) {
				assert.Equal(t, domain.CategoryCapitalWithdrawal, e.Category)
				return e, nil
			})
		repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 CapitalWithdrawal").
			DoAndReturn(func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
				assert.True(t, delta.CashOut.Equal(amount))
				return &domain.CashboxDaily{Date: day}, nil
			})

		_, err := service.WithdrawCapital(context.Background(), amount, "")

		assert.NoError(t, err)
	})

	t.Run("Rejected entry leaves the cashbox alone", func(t *testing.T) {
		ledger.EXPECT().RecordAccountingEntry(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("amount", "must be positive"))

		_, err := service.InjectCapital(context.Background(), domain.Money{}, "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDriverCash(t *testing.T) {
	service, repo, ledger := NewMock(t)
	day := domain.DateOnly(fixedNow)
	amount := domain.MoneyFromInt(0, 500000)

	tests := []struct {
		name        string
		give        bool
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Giving cash debits the driver",
			give: true,
			prepareMock: func() {
				ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
				ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
						assert.Equal(t, domain.TxDebit, tx.Type)
						assert.Equal(t, domain.SourceCash, tx.Source)
						return tx, nil
					})
				repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 driver d-1 cash: float").
					DoAndReturn(func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
						assert.True(t, delta.CashOut.Equal(amount))
						return &domain.CashboxDaily{Date: day}, nil
					})
			},
		},
		{
			name: "Taking cash credits the driver",
			prepareMock: func() {
				ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(&domain.Driver{ID: "d-1"}, nil)
				ledger.EXPECT().PostDriverTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
						assert.Equal(t, domain.TxCredit, tx.Type)
						return tx, nil
					})
				repo.EXPECT().ApplyDelta(gomock.Any(), day, gomock.Any(), "17:45:00 driver d-1 cash: float").
					DoAndReturn(func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
						assert.True(t, delta.CashIn.Equal(amount))
						return &domain.CashboxDaily{Date: day}, nil
					})
			},
		},
		{
			name: "Unknown driver",
			give: true,
			prepareMock: func() {
				ledger.EXPECT().GetDriver(gomock.Any(), "d-1").Return(nil, domain.NewNotFoundError("driver", "d-1"))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var err error
			if tt.give {
				_, err = service.GiveDriverCash(context.Background(), "d-1", amount, "float")
			} else {
				_, err = service.TakeDriverCash(context.Background(), "d-1", amount, "float")
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDelta_NotesLog(t *testing.T) {
	beirut := time.FixedZone("EET", 2*60*60)
	tests := []struct {
		name         string
		now          time.Time
		note         string
		expectedNote string
	}{
		{name: "Line is stamped with the event time", now: fixedNow, note: "till", expectedNote: "17:45:00 till"},
		{name: "Stamp is in UTC", now: time.Date(2024, 3, 15, 19, 45, 30, 0, beirut), note: "till", expectedNote: "17:45:30 till"},
		{name: "Empty note adds no line", now: fixedNow, note: "", expectedNote: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			service.now = func() time.Time { return tt.now }
			repo.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any(), tt.expectedNote).
				Return(&domain.CashboxDaily{}, nil)

			_, err := service.ApplyDelta(context.Background(), fixedNow, domain.CashboxDelta{CashIn: domain.MoneyFromInt(1, 0)}, tt.note)

			assert.NoError(t, err)
		})
	}
}
