package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyArithmetic(t *testing.T) {
	a := MoneyFromInt(20, 150000)
	b := MoneyFromInt(5, 50000)

	assert.True(t, a.Add(b).Equal(MoneyFromInt(25, 200000)))
	assert.True(t, a.Sub(b).Equal(MoneyFromInt(15, 100000)))
	assert.True(t, b.Sub(a).Equal(MoneyFromInt(-15, -100000)))
	assert.True(t, a.Neg().Equal(MoneyFromInt(-20, -150000)))
	assert.True(t, a.Add(Money{}).Equal(a), "zero value is the additive identity")
}

func TestMoneyPredicates(t *testing.T) {
	tests := []struct {
		name       string
		money      Money
		isZero     bool
		isNegative bool
	}{
		{name: "zero value", money: Money{}, isZero: true},
		{name: "usd only", money: MoneyFromInt(5, 0)},
		{name: "lbp only", money: MoneyFromInt(0, 90000)},
		{name: "negative usd", money: MoneyFromInt(-1, 10), isNegative: true},
		{name: "fractional", money: NewMoney(decimal.RequireFromString("0.01"), decimal.Zero)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isZero, tt.money.IsZero())
			assert.Equal(t, !tt.isZero, tt.money.HasValue())
			assert.Equal(t, tt.isNegative, tt.money.IsNegative())
		})
	}
}

func TestMoneySigned(t *testing.T) {
	m := MoneyFromInt(5, 1000)

	assert.True(t, m.Signed(TxCredit).Equal(m))
	assert.True(t, m.Signed(TxDebit).Equal(m.Neg()))
}
