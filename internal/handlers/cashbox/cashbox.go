package cashbox

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/dto"
	"github.com/Soufian-A/runners-erp/internal/handlers/httperr"
	"github.com/Soufian-A/runners-erp/internal/service/cashboxservice"
	"github.com/Soufian-A/runners-erp/pkg/utils"
	"github.com/Soufian-A/runners-erp/pkg/validate"
)

//go:generate mockgen -source=cashbox.go -destination=mock_cashbox.go -package=cashbox

type Service interface {
	ApplyDelta(ctx context.Context, date time.Time, delta domain.CashboxDelta, note string) (*domain.CashboxDaily, error)
	GetDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error)
	OpenDay(ctx context.Context, date time.Time) (*domain.CashboxDaily, error)
	InjectCapital(ctx context.Context, amount domain.Money, note string) (*cashboxservice.CashMovement, error)
	WithdrawCapital(ctx context.Context, amount domain.Money, note string) (*cashboxservice.CashMovement, error)
	GiveDriverCash(ctx context.Context, driverID string, amount domain.Money, note string) (*cashboxservice.CashMovement, error)
	TakeDriverCash(ctx context.Context, driverID string, amount domain.Money, note string) (*cashboxservice.CashMovement, error)
}

type CashboxHandler struct {
	cashboxService Service
}

func New(cashboxService Service) *CashboxHandler {
	return &CashboxHandler{
		cashboxService: cashboxService,
	}
}

func decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func respondDay(w http.ResponseWriter, day *domain.CashboxDaily, err error) {
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCashboxDayResponse(day))
}

func respondMovement(w http.ResponseWriter, mv *cashboxservice.CashMovement, err error) {
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	resp := dto.CashMovementResponseDTO{Day: dto.NewCashboxDayResponse(mv.Day)}
	if mv.Entry != nil {
		resp.EntryID = mv.Entry.ID
	}
	if mv.DriverTx != nil {
		resp.TransactionID = mv.DriverTx.ID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApplyDelta godoc
//
//	@Summary		Add cash in and cash out to a day
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashboxDeltaRequestDTO	true	"Day and amounts"
//	@Success		200		{object}	dto.CashboxDayResponseDTO	"Updated day"
//	@Failure		400		{object}	utils.Response				"Invalid amounts"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashbox/delta [post]
func (h *CashboxHandler) ApplyDelta(w http.ResponseWriter, r *http.Request) {
	var req dto.CashboxDeltaRequestDTO
	if !decode(w, r, &req) {
		return
	}
	date, _ := time.Parse(time.DateOnly, req.Date)
	day, err := h.cashboxService.ApplyDelta(r.Context(), date, req.Delta(), req.Note)
	respondDay(w, day, err)
}

// GetDay godoc
//
//	@Summary		Get a cashbox day
//	@Description	Days without activity come back all zero.
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	path		string						true	"Day as YYYY-MM-DD"
//	@Success		200		{object}	dto.CashboxDayResponseDTO	"Day"
//	@Failure		400		{object}	utils.Response				"Invalid date"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashbox/{date} [get]
func (h *CashboxHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	day, err := h.cashboxService.GetDay(r.Context(), date)
	respondDay(w, day, err)
}

// OpenDay godoc
//
//	@Summary		Carry the previous closing forward
//	@Description	Sets the day's opening to the latest earlier closing and recomputes its closing.
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	path		string						true	"Day as YYYY-MM-DD"
//	@Success		200		{object}	dto.CashboxDayResponseDTO	"Opened day"
//	@Failure		400		{object}	utils.Response				"Invalid date"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashbox/{date}/open [post]
func (h *CashboxHandler) OpenDay(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	day, err := h.cashboxService.OpenDay(r.Context(), date)
	respondDay(w, day, err)
}

// InjectCapital godoc
//
//	@Summary		Put owner capital into the cashbox
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashEventRequestDTO		true	"Amount"
//	@Success		200		{object}	dto.CashMovementResponseDTO	"Cash movement"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashbox/capital/inject [post]
func (h *CashboxHandler) InjectCapital(w http.ResponseWriter, r *http.Request) {
	var req dto.CashEventRequestDTO
	if !decode(w, r, &req) {
		return
	}
	mv, err := h.cashboxService.InjectCapital(r.Context(), req.Amount(), req.Note)
	respondMovement(w, mv, err)
}

// WithdrawCapital godoc
//
//	@Summary		Take owner capital out of the cashbox
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CashEventRequestDTO		true	"Amount"
//	@Success		200		{object}	dto.CashMovementResponseDTO	"Cash movement"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashbox/capital/withdraw [post]
func (h *CashboxHandler) WithdrawCapital(w http.ResponseWriter, r *http.Request) {
	var req dto.CashEventRequestDTO
	if !decode(w, r, &req) {
		return
	}
	mv, err := h.cashboxService.WithdrawCapital(r.Context(), req.Amount(), req.Note)
	respondMovement(w, mv, err)
}

// GiveDriverCash godoc
//
//	@Summary		Hand cash from the cashbox to a driver
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Driver id"
//	@Param			request	body		dto.CashEventRequestDTO		true	"Amount"
//	@Success		200		{object}	dto.CashMovementResponseDTO	"Cash movement"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		404		{object}	utils.Response				"Driver not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/drivers/{id}/cash/give [post]
func (h *CashboxHandler) GiveDriverCash(w http.ResponseWriter, r *http.Request) {
	var req dto.CashEventRequestDTO
	if !decode(w, r, &req) {
		return
	}
	mv, err := h.cashboxService.GiveDriverCash(r.Context(), chi.URLParam(r, "id"), req.Amount(), req.Note)
	respondMovement(w, mv, err)
}

// TakeDriverCash godoc
//
//	@Summary		Take cash from a driver into the cashbox
//	@Tags			Cashbox
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Driver id"
//	@Param			request	body		dto.CashEventRequestDTO		true	"Amount"
//	@Success		200		{object}	dto.CashMovementResponseDTO	"Cash movement"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		404		{object}	utils.Response				"Driver not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/drivers/{id}/cash/take [post]
func (h *CashboxHandler) TakeDriverCash(w http.ResponseWriter, r *http.Request) {
	var req dto.CashEventRequestDTO
	if !decode(w, r, &req) {
		return
	}
	mv, err := h.cashboxService.TakeDriverCash(r.Context(), chi.URLParam(r, "id"), req.Amount(), req.Note)
	respondMovement(w, mv, err)
}
