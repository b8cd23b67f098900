package dto

import (
	"time"

	"github.com/Soufian-A/runners-erp/internal/domain"
)

type DriverStatementRequestDTO struct {
	DriverID   string `json:"driver_id" validate:"required" example:"d-1"`
	PeriodFrom string `json:"period_from" validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	PeriodTo   string `json:"period_to" validate:"required,datetime=2006-01-02" example:"2024-03-31"`
}

type ClientStatementRequestDTO struct {
	ClientID   string `json:"client_id" validate:"required" example:"c-1"`
	PeriodFrom string `json:"period_from" validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	PeriodTo   string `json:"period_to" validate:"required,datetime=2006-01-02" example:"2024-03-31"`
}

type PrepaidStatementRequestDTO struct {
	ClientID string   `json:"client_id" validate:"required" example:"c-1"`
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,required"`
}

type PayStatementRequestDTO struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=64" example:"cash"`
	PaymentNotes  string `json:"payment_notes" validate:"max=1024" example:"handed over at the office"`
}

type StatementTotalsDTO struct {
	Collected        domain.Money `json:"collected"`
	DeliveryFees     domain.Money `json:"delivery_fees"`
	DriverPaidRefund domain.Money `json:"driver_paid_refund"`
	NetDue           domain.Money `json:"net_due"`
}

type StatementResponseDTO struct {
	ID            string             `json:"id"`
	StatementID   string             `json:"statement_id" example:"DS-000042"`
	Kind          string             `json:"kind" example:"driver"`
	SubjectID     string             `json:"subject_id"`
	PeriodFrom    string             `json:"period_from" example:"2024-03-01"`
	PeriodTo      string             `json:"period_to" example:"2024-03-31"`
	OrderRefs     []string           `json:"order_refs"`
	Totals        StatementTotalsDTO `json:"totals"`
	Status        string             `json:"status" example:"unpaid"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	PaymentNotes  string             `json:"payment_notes,omitempty"`
	IssuedDate    time.Time          `json:"issued_date"`
	PaidDate      *time.Time         `json:"paid_date,omitempty"`
	CreatedBy     string             `json:"created_by"`
}

func NewStatementResponse(st *domain.Statement) StatementResponseDTO {
	return StatementResponseDTO{
		ID:          st.ID,
		StatementID: st.StatementID,
		Kind:        string(st.Kind),
		SubjectID:   st.SubjectID,
		PeriodFrom:  st.PeriodFrom.Format(time.DateOnly),
		PeriodTo:    st.PeriodTo.Format(time.DateOnly),
		OrderRefs:   st.OrderRefs,
		Totals: StatementTotalsDTO{
			Collected:        st.Totals.Collected,
			DeliveryFees:     st.Totals.DeliveryFees,
			DriverPaidRefund: st.Totals.DriverPaidRefund,
			NetDue:           st.Totals.NetDue,
		},
		Status:        string(st.Status),
		PaymentMethod: st.PaymentMethod,
		PaymentNotes:  st.PaymentNotes,
		IssuedDate:    st.IssuedDate,
		PaidDate:      st.PaidDate,
		CreatedBy:     st.CreatedBy,
	}
}
