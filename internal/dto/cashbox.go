package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Soufian-A/runners-erp/internal/domain"
)

type CashboxDeltaRequestDTO struct {
	Date       string          `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-15"`
	CashInUSD  decimal.Decimal `json:"cash_in_usd" swaggertype:"string" example:"120.50"`
	CashInLBP  decimal.Decimal `json:"cash_in_lbp" swaggertype:"string" example:"0"`
	CashOutUSD decimal.Decimal `json:"cash_out_usd" swaggertype:"string" example:"0"`
	CashOutLBP decimal.Decimal `json:"cash_out_lbp" swaggertype:"string" example:"4500000"`
	Note       string          `json:"note" validate:"max=1024"`
}

func (d CashboxDeltaRequestDTO) Delta() domain.CashboxDelta {
	return domain.CashboxDelta{
		CashIn:  domain.NewMoney(d.CashInUSD, d.CashInLBP),
		CashOut: domain.NewMoney(d.CashOutUSD, d.CashOutLBP),
	}
}

type CashEventRequestDTO struct {
	AmountUSD decimal.Decimal `json:"amount_usd" swaggertype:"string" example:"50"`
	AmountLBP decimal.Decimal `json:"amount_lbp" swaggertype:"string" example:"0"`
	Note      string          `json:"note" validate:"max=1024"`
}

func (d CashEventRequestDTO) Amount() domain.Money {
	return domain.NewMoney(d.AmountUSD, d.AmountLBP)
}

type CashboxDayResponseDTO struct {
	Date    string       `json:"date" example:"2024-03-15"`
	Opening domain.Money `json:"opening"`
	CashIn  domain.Money `json:"cash_in"`
	CashOut domain.Money `json:"cash_out"`
	Closing domain.Money `json:"closing"`
	Notes   string       `json:"notes"`
}

func NewCashboxDayResponse(day *domain.CashboxDaily) CashboxDayResponseDTO {
	return CashboxDayResponseDTO{
		Date:    day.Date.Format(time.DateOnly),
		Opening: day.Opening,
		CashIn:  day.CashIn,
		CashOut: day.CashOut,
		Closing: day.Closing,
		Notes:   day.Notes,
	}
}

type CashMovementResponseDTO struct {
	Day           CashboxDayResponseDTO `json:"day"`
	EntryID       string                `json:"entry_id,omitempty"`
	TransactionID string                `json:"transaction_id,omitempty"`
}
