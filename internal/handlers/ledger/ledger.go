package ledger

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/dto"
	"github.com/Soufian-A/runners-erp/internal/handlers/httperr"
	"github.com/Soufian-A/runners-erp/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	ReconcileDriver(ctx context.Context, driverID string) (*domain.WalletReconciliation, error)
	ClientBalance(ctx context.Context, clientID string) (domain.Money, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// ReconcileDriver godoc
//
//	@Summary		Compare a driver wallet with its transactions
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string							true	"Driver id"
//	@Success		200	{object}	dto.ReconciliationResponseDTO	"Wallet and ledger sum"
//	@Failure		404	{object}	utils.Response					"Driver not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/drivers/{id}/reconcile [get]
func (h *LedgerHandler) ReconcileDriver(w http.ResponseWriter, r *http.Request) {
	rec, err := h.ledgerService.ReconcileDriver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconciliationResponseDTO{
		DriverID:  rec.DriverID,
		Wallet:    rec.Wallet,
		LedgerSum: rec.LedgerSum,
		Balanced:  rec.Balanced(),
	})
}

// ClientBalance godoc
//
//	@Summary		Get a client balance
//	@Description	Sum of the client's signed transactions. Negative means the client owes the company.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string							true	"Client id"
//	@Success		200	{object}	dto.ClientBalanceResponseDTO	"Balance"
//	@Failure		404	{object}	utils.Response					"Client not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/clients/{id}/balance [get]
func (h *LedgerHandler) ClientBalance(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	balance, err := h.ledgerService.ClientBalance(r.Context(), clientID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClientBalanceResponseDTO{
		ClientID: clientID,
		Balance:  balance,
	})
}
