package ledgerservice

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/pkg/auth"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type DriverRepo interface {
	GetDriver(ctx context.Context, id string) (*domain.Driver, error)
	AdjustWallet(ctx context.Context, id string, delta domain.Money) (*domain.Driver, error)
	ListDriverIDs(ctx context.Context) ([]string, error)
}

type ClientRepo interface {
	GetClient(ctx context.Context, id string) (*domain.Client, error)
}

type LedgerRepo interface {
	InsertDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error)
	InsertClientTransaction(ctx context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error)
	InsertAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error)
	DriverTransactionExists(ctx context.Context, orderRef string) (bool, error)
	DriverTransactionsByOrder(ctx context.Context, orderRef string) ([]domain.DriverTransaction, error)
	AccountingEntriesByOrder(ctx context.Context, orderRef string) ([]domain.AccountingEntry, error)
	DeleteByOrderRef(ctx context.Context, orderRef string) (domain.DeletedRows, error)
	SumDriverTransactions(ctx context.Context, driverID string) (domain.Money, error)
	ClientBalance(ctx context.Context, clientID string) (domain.Money, error)
}

type Service struct {
	driverRepo DriverRepo
	clientRepo ClientRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
}

func New(driverRepo DriverRepo, clientRepo ClientRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		driverRepo: driverRepo,
		clientRepo: clientRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

// WalletAdjustment is the inverse applied to one driver wallet while reverting an order.
type WalletAdjustment struct {
	DriverID string
	Delta    domain.Money
}

// Reversal describes what RevertOrder undid.
type Reversal struct {
	Wallets []WalletAdjustment
	Entries []domain.AccountingEntry
	Deleted domain.DeletedRows
}

func validateAmount(amount domain.Money) error {
	if !amount.HasValue() || amount.IsNegative() {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}

func validateType(t domain.TxType) error {
	if t != domain.TxCredit && t != domain.TxDebit {
		return domain.NewValidationError("type", "must be Credit or Debit")
	}
	return nil
}

func (s *Service) GetDriver(ctx context.Context, id string) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.NewNotFoundError("driver", id)
	}
	return driver, nil
}

func (s *Service) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewNotFoundError("client", id)
	}
	return client, nil
}

func (s *Service) ListDriverIDs(ctx context.Context) ([]string, error) {
	return s.driverRepo.ListDriverIDs(ctx)
}

// AdjustWallet applies a signed delta to the driver wallet.
func (s *Service) AdjustWallet(ctx context.Context, driverID string, delta domain.Money) (*domain.Driver, error) {
	driver, err := s.driverRepo.AdjustWallet(ctx, driverID, delta)
	if err != nil {
		zap.L().Error("failed to adjust wallet", zap.String("driver_id", driverID), zap.Stringer("delta", delta), zap.Error(err))
		return nil, err
	}
	return driver, nil
}

// RecordDriverTransaction appends a driver transaction without touching the wallet.
// Use PostDriverTransaction when the wallet must follow.
func (s *Service) RecordDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
	if err := validateType(tx.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(tx.Amount); err != nil {
		return nil, err
	}
	tx.ID = uuid.NewString()
	tx.CreatedBy = auth.ActorFromContext(ctx)
	return s.ledgerRepo.InsertDriverTransaction(ctx, tx)
}

// PostDriverTransaction records the transaction and moves the wallet by its signed amount
// in one database transaction.
func (s *Service) PostDriverTransaction(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
	var recorded *domain.DriverTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		recorded, err = s.RecordDriverTransaction(ctx, tx)
		if err != nil {
			return err
		}
		_, err = s.AdjustWallet(ctx, tx.DriverID, tx.Amount.Signed(tx.Type))
		return err
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

func (s *Service) RecordClientTransaction(ctx context.Context, tx *domain.ClientTransaction) (*domain.ClientTransaction, error) {
	if err := validateType(tx.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(tx.Amount); err != nil {
		return nil, err
	}
	tx.ID = uuid.NewString()
	tx.CreatedBy = auth.ActorFromContext(ctx)
	return s.ledgerRepo.InsertClientTransaction(ctx, tx)
}

func (s *Service) RecordAccountingEntry(ctx context.Context, entry *domain.AccountingEntry) (*domain.AccountingEntry, error) {
	if err := validateAmount(entry.Amount); err != nil {
		return nil, err
	}
	entry.ID = uuid.NewString()
	entry.CreatedBy = auth.ActorFromContext(ctx)
	return s.ledgerRepo.InsertAccountingEntry(ctx, entry)
}

func (s *Service) DriverTransactionExists(ctx context.Context, orderRef string) (bool, error) {
	return s.ledgerRepo.DriverTransactionExists(ctx, orderRef)
}

// RevertOrder undoes every ledger effect tagged with orderRef. Wallet deltas come from the
// persisted driver transactions, so the reversal is exact whatever branch settled the order.
func (s *Service) RevertOrder(ctx context.Context, orderRef string) (*Reversal, error) {
	var reversal Reversal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		txs, err := s.ledgerRepo.DriverTransactionsByOrder(ctx, orderRef)
		if err != nil {
			return err
		}

		net := make(map[string]domain.Money)
		for _, tx := range txs {
			net[tx.DriverID] = net[tx.DriverID].Add(tx.Amount.Signed(tx.Type))
		}
		driverIDs := make([]string, 0, len(net))
		for id := range net {
			driverIDs = append(driverIDs, id)
		}
		sort.Strings(driverIDs)

		for _, id := range driverIDs {
			delta := net[id].Neg()
			if !delta.HasValue() {
				continue
			}
			if _, err := s.AdjustWallet(ctx, id, delta); err != nil {
				return err
			}
			reversal.Wallets = append(reversal.Wallets, WalletAdjustment{DriverID: id, Delta: delta})
		}

		reversal.Entries, err = s.ledgerRepo.AccountingEntriesByOrder(ctx, orderRef)
		if err != nil {
			return err
		}

		reversal.Deleted, err = s.ledgerRepo.DeleteByOrderRef(ctx, orderRef)
		return err
	})
	if err != nil {
		zap.L().Error("failed to revert order ledger", zap.String("order_ref", orderRef), zap.Error(err))
		return nil, err
	}
	return &reversal, nil
}

func (s *Service) ClientBalance(ctx context.Context, clientID string) (domain.Money, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return domain.Money{}, err
	}
	return s.ledgerRepo.ClientBalance(ctx, clientID)
}

// ReconcileDriver compares the stored wallet with the signed sum of the driver's transactions.
func (s *Service) ReconcileDriver(ctx context.Context, driverID string) (*domain.WalletReconciliation, error) {
	driver, err := s.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	sum, err := s.ledgerRepo.SumDriverTransactions(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return &domain.WalletReconciliation{
		DriverID:  driverID,
		Wallet:    driver.Wallet,
		LedgerSum: sum,
	}, nil
}
