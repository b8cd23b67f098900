package cashbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/dto"
	"github.com/Soufian-A/runners-erp/internal/service/cashboxservice"
	"github.com/Soufian-A/runners-erp/pkg/utils"
)

func NewMock(t *testing.T) (*CashboxHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var march15 = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func day() *domain.CashboxDaily {
	return &domain.CashboxDaily{
		Date:    march15,
		Opening: domain.MoneyFromInt(100, 0),
		CashIn:  domain.MoneyFromInt(20, 0),
		Closing: domain.MoneyFromInt(120, 0),
	}
}

func TestApplyDelta(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Applied",
			body: `{"date":"2024-03-15","cash_in_usd":"20","cash_out_lbp":4500000,"note":"till"}`,
			prepareMock: func() {
				service.EXPECT().ApplyDelta(gomock.Any(), march15, gomock.Any(), "till").DoAndReturn(
					func(_ context.Context, _ time.Time, delta domain.CashboxDelta, _ string) (*domain.CashboxDaily, error) {
						assert.True(t, delta.CashIn.Equal(domain.MoneyFromInt(20, 0)))
						assert.True(t, delta.CashOut.Equal(domain.MoneyFromInt(0, 4500000)))
						return day(), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing date",
			body:          `{"cash_in_usd":"20"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "date: failed on required",
		},
		{
			name: "Negative amount",
			body: `{"date":"2024-03-15","cash_in_usd":"-5"}`,
			prepareMock: func() {
				service.EXPECT().ApplyDelta(gomock.Any(), march15, gomock.Any(), "").
					Return(nil, domain.NewValidationError("cash_in", "must not be negative"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "cash_in: must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/cashbox/delta", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ApplyDelta(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var body utils.Response
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}

func TestGetDay(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		date         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			date: "2024-03-15",
			prepareMock: func() {
				service.EXPECT().GetDay(gomock.Any(), march15).Return(day(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad date",
			date:         "15-03-2024",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			date: "2024-03-15",
			prepareMock: func() {
				service.EXPECT().GetDay(gomock.Any(), march15).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withParam(httptest.NewRequest(http.MethodGet, "/api/cashbox/"+tt.date, nil), "date", tt.date)
			w := httptest.NewRecorder()

			handler.GetDay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CashboxDayResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "2024-03-15", body.Date)
				assert.True(t, body.Closing.Equal(domain.MoneyFromInt(120, 0)))
			}
		})
	}
}

func TestOpenDay(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().OpenDay(gomock.Any(), march15).Return(day(), nil)

	r := withParam(httptest.NewRequest(http.MethodPost, "/api/cashbox/2024-03-15/open", nil), "date", "2024-03-15")
	w := httptest.NewRecorder()

	handler.OpenDay(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCapital(t *testing.T) {
	handler, service := NewMock(t)
	movement := &cashboxservice.CashMovement{Day: day(), Entry: &domain.AccountingEntry{ID: "e-1"}}
	service.EXPECT().InjectCapital(gomock.Any(), gomock.Any(), "owner").Return(movement, nil)
	service.EXPECT().WithdrawCapital(gomock.Any(), gomock.Any(), "owner").
		Return(nil, domain.NewValidationError("amount", "must be positive"))

	r := httptest.NewRequest(http.MethodPost, "/api/cashbox/capital/inject", bytes.NewBufferString(`{"amount_usd":"500","note":"owner"}`))
	w := httptest.NewRecorder()
	handler.InjectCapital(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.CashMovementResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "e-1", body.EntryID)
	assert.Empty(t, body.TransactionID)

	r = httptest.NewRequest(http.MethodPost, "/api/cashbox/capital/withdraw", bytes.NewBufferString(`{"note":"owner"}`))
	w = httptest.NewRecorder()
	handler.WithdrawCapital(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDriverCash(t *testing.T) {
	handler, service := NewMock(t)
	movement := &cashboxservice.CashMovement{Day: day(), DriverTx: &domain.DriverTransaction{ID: "t-1"}}
	service.EXPECT().GiveDriverCash(gomock.Any(), "d-1", gomock.Any(), "float").DoAndReturn(
		func(_ context.Context, _ string, amount domain.Money, _ string) (*cashboxservice.CashMovement, error) {
			assert.True(t, amount.Equal(domain.MoneyFromInt(50, 0)))
			return movement, nil
		})
	service.EXPECT().TakeDriverCash(gomock.Any(), "d-9", gomock.Any(), "").Return(nil, domain.NewNotFoundError("driver", "d-9"))

	r := withParam(httptest.NewRequest(http.MethodPost, "/api/drivers/d-1/cash/give", bytes.NewBufferString(`{"amount_usd":50,"note":"float"}`)), "id", "d-1")
	w := httptest.NewRecorder()
	handler.GiveDriverCash(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.CashMovementResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "t-1", body.TransactionID)

	r = withParam(httptest.NewRequest(http.MethodPost, "/api/drivers/d-9/cash/take", bytes.NewBufferString(`{"amount_usd":"10"}`)), "id", "d-9")
	w = httptest.NewRecorder()
	handler.TakeDriverCash(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
