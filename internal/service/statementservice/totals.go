package statementservice

import "github.com/Soufian-A/runners-erp/internal/domain"

// DriverTotals sums what a driver has to hand over for the orders. A driver who paid the client
// contributes nothing to collected and is owed the paid amount back instead.
func DriverTotals(orders []domain.Order) domain.StatementTotals {
	var t domain.StatementTotals
	for _, o := range orders {
		t.DeliveryFees = t.DeliveryFees.Add(o.DeliveryFee)
		if o.DriverPaidForClient {
			t.DriverPaidRefund = t.DriverPaidRefund.Add(o.DriverPaidAmount)
			continue
		}
		t.Collected = t.Collected.Add(o.OrderAmount.Add(o.DeliveryFee))
	}
	t.NetDue = t.Collected.Sub(t.DriverPaidRefund)
	return t
}

// ClientContribution is what one delivered order adds to the amount owed to its client.
func ClientContribution(o domain.Order) domain.Money {
	if o.DriverPaidForClient {
		return o.OrderAmount.Add(o.DeliveryFee).Neg()
	}
	if o.ClientFeeRule == domain.FeeRuleAddOn {
		return o.OrderAmount
	}
	return o.OrderAmount.Sub(o.DeliveryFee)
}

// ClientTotals keeps NetDue = Collected - DeliveryFees - DriverPaidRefund, where DeliveryFees only
// counts fees taken out of the goods value.
func ClientTotals(orders []domain.Order) domain.StatementTotals {
	var t domain.StatementTotals
	for _, o := range orders {
		t.NetDue = t.NetDue.Add(ClientContribution(o))
		if o.DriverPaidForClient {
			t.DriverPaidRefund = t.DriverPaidRefund.Add(o.OrderAmount.Add(o.DeliveryFee))
			continue
		}
		t.Collected = t.Collected.Add(o.OrderAmount)
		if o.ClientFeeRule != domain.FeeRuleAddOn {
			t.DeliveryFees = t.DeliveryFees.Add(o.DeliveryFee)
		}
	}
	return t
}

// PrepaidNet is the cash the company advances to the client for one order.
func PrepaidNet(o domain.Order) domain.Money {
	return o.OrderAmount.Sub(o.DeliveryFee)
}

func PrepaidTotals(orders []domain.Order) domain.StatementTotals {
	var t domain.StatementTotals
	for _, o := range orders {
		t.Collected = t.Collected.Add(o.OrderAmount)
		t.DeliveryFees = t.DeliveryFees.Add(o.DeliveryFee)
		t.NetDue = t.NetDue.Add(PrepaidNet(o))
	}
	return t
}
