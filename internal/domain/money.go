package domain

import "github.com/shopspring/decimal"

// Money holds the two parallel currencies. USD and LBP are never converted into each other.
type Money struct {
	USD decimal.Decimal `json:"usd"`
	LBP decimal.Decimal `json:"lbp"`
}

func NewMoney(usd, lbp decimal.Decimal) Money {
	return Money{USD: usd, LBP: lbp}
}

func MoneyFromInt(usd, lbp int64) Money {
	return Money{USD: decimal.NewFromInt(usd), LBP: decimal.NewFromInt(lbp)}
}

func (m Money) Add(o Money) Money {
	return Money{USD: m.USD.Add(o.USD), LBP: m.LBP.Add(o.LBP)}
}

func (m Money) Sub(o Money) Money {
	return Money{USD: m.USD.Sub(o.USD), LBP: m.LBP.Sub(o.LBP)}
}

func (m Money) Neg() Money {
	return Money{USD: m.USD.Neg(), LBP: m.LBP.Neg()}
}

func (m Money) Equal(o Money) bool {
	return m.USD.Equal(o.USD) && m.LBP.Equal(o.LBP)
}

func (m Money) IsZero() bool {
	return m.USD.IsZero() && m.LBP.IsZero()
}

// HasValue reports whether at least one currency is non-zero.
func (m Money) HasValue() bool {
	return !m.IsZero()
}

// IsNegative reports whether at least one currency is below zero.
func (m Money) IsNegative() bool {
	return m.USD.IsNegative() || m.LBP.IsNegative()
}

// Signed returns the amount as it applies to a balance: credits add, debits subtract.
func (m Money) Signed(t TxType) Money {
	if t == TxDebit {
		return m.Neg()
	}
	return m
}

func (m Money) String() string {
	return m.USD.StringFixed(2) + " USD / " + m.LBP.StringFixed(0) + " LBP"
}
