package service

import (
	"github.com/Soufian-A/runners-erp/internal/handlers/cashbox"
	"github.com/Soufian-A/runners-erp/internal/handlers/ledger"
	"github.com/Soufian-A/runners-erp/internal/handlers/settlement"
	"github.com/Soufian-A/runners-erp/internal/handlers/statement"
	"github.com/Soufian-A/runners-erp/internal/lock"
	"github.com/Soufian-A/runners-erp/internal/pg"
	"github.com/Soufian-A/runners-erp/internal/reconcile"
	"github.com/Soufian-A/runners-erp/internal/repo"
	"github.com/Soufian-A/runners-erp/internal/service/cashboxservice"
	"github.com/Soufian-A/runners-erp/internal/service/ledgerservice"
	"github.com/Soufian-A/runners-erp/internal/service/settlementservice"
	"github.com/Soufian-A/runners-erp/internal/service/statementservice"
)

type Services struct {
	LedgerService     ledger.Service
	WalletLedger      reconcile.Ledger
	CashboxService    cashbox.Service
	SettlementService settlement.Service
	StatementService  statement.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, locker lock.Locker) *Services {
	ledgerService := ledgerservice.New(repo.DriverRepo, repo.ClientRepo, repo.LedgerRepo, txManager)
	cashboxService := cashboxservice.New(repo.CashboxRepo, ledgerService, txManager)
	settlementService := settlementservice.New(repo.OrderRepo, repo.StatementRepo, ledgerService, cashboxService, locker, txManager)
	statementService := statementservice.New(repo.OrderRepo, repo.StatementRepo, ledgerService, cashboxService, txManager)

	return &Services{
		LedgerService:     ledgerService,
		WalletLedger:      ledgerService,
		CashboxService:    cashboxService,
		SettlementService: settlementService,
		StatementService:  statementService,
	}
}
