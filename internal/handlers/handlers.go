package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Soufian-A/runners-erp/docs"
	cashboxhandlers "github.com/Soufian-A/runners-erp/internal/handlers/cashbox"
	ledgerhandlers "github.com/Soufian-A/runners-erp/internal/handlers/ledger"
	settlementhandlers "github.com/Soufian-A/runners-erp/internal/handlers/settlement"
	statementhandlers "github.com/Soufian-A/runners-erp/internal/handlers/statement"
	"github.com/Soufian-A/runners-erp/internal/service"
	"github.com/Soufian-A/runners-erp/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type SettlementHandler interface {
	ProcessOrderDelivery(w http.ResponseWriter, r *http.Request)
	DeleteOrderWithAccounting(w http.ResponseWriter, r *http.Request)
}

type StatementHandler interface {
	IssueDriverStatement(w http.ResponseWriter, r *http.Request)
	IssueClientStatement(w http.ResponseWriter, r *http.Request)
	IssuePrepaidStatement(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type CashboxHandler interface {
	ApplyDelta(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	OpenDay(w http.ResponseWriter, r *http.Request)
	InjectCapital(w http.ResponseWriter, r *http.Request)
	WithdrawCapital(w http.ResponseWriter, r *http.Request)
	GiveDriverCash(w http.ResponseWriter, r *http.Request)
	TakeDriverCash(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	ReconcileDriver(w http.ResponseWriter, r *http.Request)
	ClientBalance(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SettlementHandler SettlementHandler
	StatementHandler  StatementHandler
	CashboxHandler    CashboxHandler
	LedgerHandler     LedgerHandler
	TokenValidator    auth.TokenValidator
}

func New(s *service.Services, validator auth.TokenValidator) *Handlers {
	return &Handlers{
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		StatementHandler:  statementhandlers.New(s.StatementService),
		CashboxHandler:    cashboxhandlers.New(s.CashboxService),
		LedgerHandler:     ledgerhandlers.New(s.LedgerService),
		TokenValidator:    validator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.TokenValidator))

		r.Route("/orders/{id}", func(r chi.Router) {
			r.Post("/deliver", h.SettlementHandler.ProcessOrderDelivery)
			r.Delete("/", h.SettlementHandler.DeleteOrderWithAccounting)
		})
		r.Route("/statements", func(r chi.Router) {
			r.Post("/driver", h.StatementHandler.IssueDriverStatement)
			r.Post("/client", h.StatementHandler.IssueClientStatement)
			r.Post("/prepaid", h.StatementHandler.IssuePrepaidStatement)
			r.Get("/{id}", h.StatementHandler.GetStatement)
			r.Post("/{id}/pay", h.StatementHandler.MarkPaid)
		})
		r.Route("/cashbox", func(r chi.Router) {
			r.Post("/delta", h.CashboxHandler.ApplyDelta)
			r.Post("/capital/inject", h.CashboxHandler.InjectCapital)
			r.Post("/capital/withdraw", h.CashboxHandler.WithdrawCapital)
			r.Get("/{date}", h.CashboxHandler.GetDay)
			r.Post("/{date}/open", h.CashboxHandler.OpenDay)
		})
		r.Route("/drivers/{id}", func(r chi.Router) {
			r.Post("/cash/give", h.CashboxHandler.GiveDriverCash)
			r.Post("/cash/take", h.CashboxHandler.TakeDriverCash)
			r.Get("/reconcile", h.LedgerHandler.ReconcileDriver)
		})
		r.Get("/clients/{id}/balance", h.LedgerHandler.ClientBalance)
	})

	return r
}
