package cashboxservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

//go:generate mockgen -source=cashboxservice.go -destination=mock_cashboxservice.go -package=cashboxservice

type CashboxRepo interface {
	ApplyDelta(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error)
	GetDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error)
	CarryForward(ctx context.Context, date time.Time) (*domain.CashboxDaily, error)
}

type Ledger interface {
	GetDriver(ctx context.Context, id string) (*domain.Driver, error)
	PostDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error)
	RecordAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error)
}

type Service struct {
	repo      CashboxRepo
	ledger    Ledger
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo CashboxRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// CashMovement is the result of a cash event: the cashbox day it landed on plus the ledger row justifying it.
type CashMovement struct {
	Day      *domain.CashboxDaily
	Entry    *domain.AccountingEntry
	DriverTx *domain.DriverTransaction
}

func (s *Service) today() time.Time {
	return domain.DateOnly(s.now())
}

// ApplyDelta adds cash in and cash out to the day. Direction is carried by the field, so negative components are rejected.
func (s *Service) ApplyDelta(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error) {
	if delta.CashIn.IsNegative() {
		return nil, domain.NewValidationError("cash_in", "must not be negative")
	}
	if delta.CashOut.IsNegative() {
		return nil, domain.NewValidationError("cash_out", "must not be negative")
	}
	return s.apply(ctx, date, delta, note)
}

// ReverseCashOut takes a previously recorded cash out back off the day.
func (s *Service) ReverseCashOut(ctx context.Context, date time.Time, amount domain.Money, note string) (*domain.CashboxDaily, error) {
	return s.apply(ctx, date, domain.CashboxDelta{CashOut: amount.Neg()}, note)
}

func (s *Service) apply(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error) {
	day, err := s.repo.ApplyDelta(ctx, domain.DateOnly(date), delta, s.noteLine(note))
	if err != nil {
		zap.L().Error("failed to apply cashbox delta",
			zap.Time("date", date), zap.Stringer("cash_in", delta.CashIn), zap.Stringer("cash_out", delta.CashOut), zap.Error(err))
		return nil, err
	}
	return day, nil
}

// GetDay returns the day's row, or an all-zero day when nothing happened on it.
func (s *Service) GetDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error) {
	date = domain.DateOnly(date)
	day, err := s.repo.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return &domain.CashboxDaily{Date: date, Opening: zero(), CashIn: zero(), CashOut: zero(), Closing: zero()}, nil
	}
	return day, nil
}

// OpenDay carries the latest earlier closing into the day's opening.
func (s *Service) OpenDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error) {
	day, err := s.repo.CarryForward(ctx, domain.DateOnly(date))
	if err != nil {
		zap.L().Error("failed to open cashbox day", zap.Time("date", date), zap.Error(err))
		return nil, err
	}
	return day, nil
}

func (s *Service) InjectCapital(ctx context.Context, amount domain.Money, note string) (*CashMovement, error) {
	return s.capital(ctx, domain.CategoryCapitalInjection, amount, note, domain.CashboxDelta{CashIn: amount})
}

func (s *Service) WithdrawCapital(ctx context.Context, amount domain.Money, note string) (*CashMovement, error) {
	return s.capital(ctx, domain.CategoryCapitalWithdrawal, amount, note, domain.CashboxDelta{CashOut: amount})
}

func (s *Service) capital(ctx context.Context, category domain.AccountingCategory, amount domain.Money, note string, delta domain.CashboxDelta) (*CashMovement, error) {
	var movement CashMovement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		movement.Entry, err = s.ledger.RecordAccountingEntry(ctx, &domain.AccountingEntry{
			Category: category,
			Amount:   amount,
			Memo:     note,
		})
		if err != nil {
			return err
		}
		movement.Day, err = s.ApplyDelta(ctx, s.today(), delta, string(category)+noteSuffix(note))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

// GiveDriverCash hands cash from the cashbox to a driver, who then owes it back.
func (s *Service) GiveDriverCash(ctx context.Context, driverID string, amount domain.Money, note string) (*CashMovement, error) {
	return s.driverCash(ctx, driverID, domain.TxDebit, amount, note, domain.CashboxDelta{CashOut: amount})
}

// TakeDriverCash receives cash from a driver into the cashbox.
func (s *Service) TakeDriverCash(ctx context.Context, driverID string, amount domain.Money, note string) (*CashMovement, error) {
	return s.driverCash(ctx, driverID, domain.TxCredit, amount, note, domain.CashboxDelta{CashIn: amount})
}

func (s *Service) driverCash(ctx context.Context, driverID string, txType domain.TxType, amount domain.Money, note string, delta domain.CashboxDelta) (*CashMovement, error) {
	var movement CashMovement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.GetDriver(ctx, driverID); err != nil {
			return err
		}
		var err error
		movement.DriverTx, err = s.ledger.PostDriverTransaction(ctx, &domain.DriverTransaction{
			DriverID: driverID,
			Type:     txType,
			Amount:   amount,
			Source:   domain.SourceCash,
			Note:     note,
		})
		if err != nil {
			return err
		}
		movement.Day, err = s.ApplyDelta(ctx, s.today(), delta, "driver "+driverID+" cash"+noteSuffix(note))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

// noteLine stamps a notes log line with the time the event was recorded.
func (s *Service) noteLine(note string) string {
	if note == "" {
		return ""
	}
	return s.now().UTC().Format(time.TimeOnly) + " " + note
}

func noteSuffix(note string) string {
	if note == "" {
		return ""
	}
	return ": " + note
}

func zero() domain.Money {
	return domain.MoneyFromInt(0, 0)
}
