package settlement

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Soufian-A/runners-erp/internal/dto"
	"github.com/Soufian-A/runners-erp/internal/service/settlementservice"
	"github.com/Soufian-A/runners-erp/pkg/utils"
)

//go:generate mockgen -source=settlement.go -destination=mock_settlement.go -package=settlement

type Service interface {
	ProcessOrderDelivery(ctx context.Context, orderID string) (*settlementservice.Result, error)
	DeleteOrderWithAccounting(ctx context.Context, orderID string) (*settlementservice.Result, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

func respond(w http.ResponseWriter, result *settlementservice.Result, err error) {
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResultDTO{
		Success: result.Success,
		Message: result.Message,
		OrderID: result.OrderID,
	})
}

// ProcessOrderDelivery godoc
//
//	@Summary		Settle a delivered order
//	@Description	Posts the driver, client and accounting effects of a delivered order. Repeated calls are reported as already processed.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Order id"
//	@Success		200	{object}	dto.SettlementResultDTO	"Settlement outcome"
//	@Failure		400	{object}	utils.Response			"Settlement failed"
//	@Failure		401	{object}	utils.Response			"Caller not authorized"
//	@Router			/api/orders/{id}/deliver [post]
func (h *SettlementHandler) ProcessOrderDelivery(w http.ResponseWriter, r *http.Request) {
	result, err := h.settlementService.ProcessOrderDelivery(r.Context(), chi.URLParam(r, "id"))
	respond(w, result, err)
}

// DeleteOrderWithAccounting godoc
//
//	@Summary		Delete an order and revert its accounting
//	@Description	Reverses wallet, client, cashbox and accounting effects of the order, then deletes it. The message lists every reversal step.
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Order id"
//	@Success		200	{object}	dto.SettlementResultDTO	"Reversal trail"
//	@Failure		400	{object}	utils.Response			"Reversal failed"
//	@Failure		401	{object}	utils.Response			"Caller not authorized"
//	@Router			/api/orders/{id} [delete]
func (h *SettlementHandler) DeleteOrderWithAccounting(w http.ResponseWriter, r *http.Request) {
	result, err := h.settlementService.DeleteOrderWithAccounting(r.Context(), chi.URLParam(r, "id"))
	respond(w, result, err)
}
