package repo

import (
	"github.com/Soufian-A/runners-erp/internal/pg"
	cashboxrepo "github.com/Soufian-A/runners-erp/internal/repo/cashbox-repo"
	clientrepo "github.com/Soufian-A/runners-erp/internal/repo/client-repo"
	driverrepo "github.com/Soufian-A/runners-erp/internal/repo/driver-repo"
	ledgerrepo "github.com/Soufian-A/runners-erp/internal/repo/ledger-repo"
	orderrepo "github.com/Soufian-A/runners-erp/internal/repo/order-repo"
	statementrepo "github.com/Soufian-A/runners-erp/internal/repo/statement-repo"
	"github.com/Soufian-A/runners-erp/internal/service/cashboxservice"
	"github.com/Soufian-A/runners-erp/internal/service/ledgerservice"
	"github.com/Soufian-A/runners-erp/internal/service/settlementservice"
	"github.com/Soufian-A/runners-erp/internal/service/statementservice"
)

// OrderRepo is the union of what settlement and statement issuing need from orders.
type OrderRepo interface {
	settlementservice.OrderRepo
	statementservice.OrderRepo
}

// StatementRepo is the union of what settlement and statement issuing need from statements.
type StatementRepo interface {
	settlementservice.StatementRepo
	statementservice.StatementRepo
}

type Repositories struct {
	DriverRepo    ledgerservice.DriverRepo
	ClientRepo    ledgerservice.ClientRepo
	LedgerRepo    ledgerservice.LedgerRepo
	CashboxRepo   cashboxservice.CashboxRepo
	OrderRepo     OrderRepo
	StatementRepo StatementRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		DriverRepo:    driverrepo.New(conn),
		ClientRepo:    clientrepo.New(conn),
		LedgerRepo:    ledgerrepo.New(conn, txManager),
		CashboxRepo:   cashboxrepo.New(conn),
		OrderRepo:     orderrepo.New(conn),
		StatementRepo: statementrepo.New(conn),
	}
}
