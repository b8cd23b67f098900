package statement

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/dto"
	"github.com/Soufian-A/runners-erp/internal/handlers/httperr"
	"github.com/Soufian-A/runners-erp/pkg/utils"
	"github.com/Soufian-A/runners-erp/pkg/validate"
)

//go:generate mockgen -source=statement.go -destination=mock_statement.go -package=statement

type Service interface {
	IssueDriverStatement(ctx context.Context, driverID string, from, to time.Time) (*domain.Statement, error)
	IssueClientStatement(ctx context.Context, clientID string, from, to time.Time) (*domain.Statement, error)
	IssuePrepaidStatement(ctx context.Context, clientID string, orderIDs []string) (*domain.Statement, error)
	GetStatement(ctx context.Context, id string) (*domain.Statement, error)
	MarkPaid(ctx context.Context, id, method, notes string) (*domain.Statement, error)
}

type StatementHandler struct {
	statementService Service
}

func New(statementService Service) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
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

// validate has already checked the layout, so parsing cannot fail here.
func period(from, to string) (time.Time, time.Time) {
	f, _ := time.Parse(time.DateOnly, from)
	t, _ := time.Parse(time.DateOnly, to)
	return f, t
}

func respond(w http.ResponseWriter, code int, st *domain.Statement, err error) {
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewStatementResponse(st))
}

// IssueDriverStatement godoc
//
//	@Summary		Issue a driver statement
//	@Description	Snapshots the driver's pending remittances delivered in the period.
//	@Tags			Statements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DriverStatementRequestDTO	true	"Driver and period"
//	@Success		201		{object}	dto.StatementResponseDTO		"Issued statement"
//	@Failure		400		{object}	utils.Response					"Invalid request or nothing to issue"
//	@Failure		404		{object}	utils.Response					"Driver not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/statements/driver [post]
func (h *StatementHandler) IssueDriverStatement(w http.ResponseWriter, r *http.Request) {
	var req dto.DriverStatementRequestDTO
	if !decode(w, r, &req) {
		return
	}
	from, to := period(req.PeriodFrom, req.PeriodTo)
	st, err := h.statementService.IssueDriverStatement(r.Context(), req.DriverID, from, to)
	respond(w, http.StatusCreated, st, err)
}

// IssueClientStatement godoc
//
//	@Summary		Issue a client statement
//	@Description	Snapshots what the company owes the client for orders delivered in the period.
//	@Tags			Statements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClientStatementRequestDTO	true	"Client and period"
//	@Success		201		{object}	dto.StatementResponseDTO		"Issued statement"
//	@Failure		400		{object}	utils.Response					"Invalid request or nothing to issue"
//	@Failure		404		{object}	utils.Response					"Client not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/statements/client [post]
func (h *StatementHandler) IssueClientStatement(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientStatementRequestDTO
	if !decode(w, r, &req) {
		return
	}
	from, to := period(req.PeriodFrom, req.PeriodTo)
	st, err := h.statementService.IssueClientStatement(r.Context(), req.ClientID, from, to)
	respond(w, http.StatusCreated, st, err)
}

// IssuePrepaidStatement godoc
//
//	@Summary		Issue a prepaid statement
//	@Description	Pays the client the goods value minus fees out of the cashbox for the selected orders.
//	@Tags			Statements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PrepaidStatementRequestDTO	true	"Client and orders"
//	@Success		201		{object}	dto.StatementResponseDTO		"Issued and paid statement"
//	@Failure		400		{object}	utils.Response					"Order not eligible"
//	@Failure		404		{object}	utils.Response					"Client or order not found"
//	@Failure		409		{object}	utils.Response					"Order settled concurrently"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/statements/prepaid [post]
func (h *StatementHandler) IssuePrepaidStatement(w http.ResponseWriter, r *http.Request) {
	var req dto.PrepaidStatementRequestDTO
	if !decode(w, r, &req) {
		return
	}
	st, err := h.statementService.IssuePrepaidStatement(r.Context(), req.ClientID, req.OrderIDs)
	respond(w, http.StatusCreated, st, err)
}

// GetStatement godoc
//
//	@Summary		Get a statement
//	@Tags			Statements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Statement uuid or number"
//	@Success		200	{object}	dto.StatementResponseDTO	"Statement"
//	@Failure		404	{object}	utils.Response				"Statement not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/statements/{id} [get]
func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	st, err := h.statementService.GetStatement(r.Context(), chi.URLParam(r, "id"))
	respond(w, http.StatusOK, st, err)
}

// MarkPaid godoc
//
//	@Summary		Mark a statement paid
//	@Description	Moves an unpaid statement to paid. Paying a driver statement marks its orders collected.
//	@Tags			Statements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Statement uuid or number"
//	@Param			request	body		dto.PayStatementRequestDTO	true	"Payment details"
//	@Success		200		{object}	dto.StatementResponseDTO	"Paid statement"
//	@Failure		400		{object}	utils.Response				"Statement already paid"
//	@Failure		404		{object}	utils.Response				"Statement not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/statements/{id}/pay [post]
func (h *StatementHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req dto.PayStatementRequestDTO
	if !decode(w, r, &req) {
		return
	}
	st, err := h.statementService.MarkPaid(r.Context(), chi.URLParam(r, "id"), req.PaymentMethod, req.PaymentNotes)
	respond(w, http.StatusOK, st, err)
}
