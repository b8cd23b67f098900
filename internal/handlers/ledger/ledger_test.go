package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/dto"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestReconcileDriver(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name             string
		prepareMock      func()
		expectedCode     int
		expectedBalanced bool
	}{
		{
			name: "Balanced",
			prepareMock: func() {
				service.EXPECT().ReconcileDriver(gomock.Any(), "d-1").Return(&domain.WalletReconciliation{
					DriverID:  "d-1",
					Wallet:    domain.MoneyFromInt(5, 0),
					LedgerSum: domain.MoneyFromInt(5, 0),
				}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedBalanced: true,
		},
		{
			name: "Drifted",
			prepareMock: func() {
				service.EXPECT().ReconcileDriver(gomock.Any(), "d-1").Return(&domain.WalletReconciliation{
					DriverID:  "d-1",
					Wallet:    domain.MoneyFromInt(5, 0),
					LedgerSum: domain.MoneyFromInt(0, 0),
				}, nil)
			},
			expectedCode:     http.StatusOK,
			expectedBalanced: false,
		},
		{
			name: "Unknown driver",
			prepareMock: func() {
				service.EXPECT().ReconcileDriver(gomock.Any(), "d-1").Return(nil, domain.NewNotFoundError("driver", "d-1"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodGet, "/api/drivers/d-1/reconcile", nil), "d-1")
			w := httptest.NewRecorder()

			handler.ReconcileDriver(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ReconciliationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBalanced, body.Balanced)
				assert.Equal(t, "d-1", body.DriverID)
			}
		})
	}
}

func TestClientBalance(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Owes the company",
			prepareMock: func() {
				service.EXPECT().ClientBalance(gomock.Any(), "c-1").Return(domain.MoneyFromInt(-20, -150000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().ClientBalance(gomock.Any(), "c-1").Return(domain.Money{}, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodGet, "/api/clients/c-1/balance", nil), "c-1")
			w := httptest.NewRecorder()

			handler.ClientBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ClientBalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Balance.Equal(domain.MoneyFromInt(-20, -150000)))
			}
		})
	}
}
