package domain

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusAssigned  OrderStatus = "Assigned"
	OrderStatusPickedUp  OrderStatus = "PickedUp"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusReturned  OrderStatus = "Returned"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type Fulfillment string

const (
	FulfillmentInHouse    Fulfillment = "InHouse"
	FulfillmentThirdParty Fulfillment = "ThirdParty"
)

type FeeRule string

const (
	FeeRuleAddOn    FeeRule = "ADD_ON"
	FeeRuleDeduct   FeeRule = "DEDUCT"
	FeeRuleIncluded FeeRule = "INCLUDED"
)

type RemitStatus string

const (
	RemitPending   RemitStatus = "Pending"
	RemitCollected RemitStatus = "Collected"
)

// SettlementPath records which money flow already consumed an order.
type SettlementPath string

const (
	SettlementNone      SettlementPath = "none"
	SettlementPrepaid   SettlementPath = "prepaid"
	SettlementDelivered SettlementPath = "delivered"
)

type Order struct {
	ID                  string         `db:"id"`
	OrderID             string         `db:"order_id"`
	Status              OrderStatus    `db:"status"`
	Fulfillment         Fulfillment    `db:"fulfillment"`
	ClientFeeRule       FeeRule        `db:"client_fee_rule"`
	DriverID            string         `db:"driver_id"`
	ClientID            string         `db:"client_id"`
	OrderAmount         Money          `db:"order_amount"`
	DeliveryFee         Money          `db:"delivery_fee"`
	DriverPaidForClient bool           `db:"driver_paid_for_client"`
	DriverPaidAmount    Money          `db:"driver_paid_amount"`
	DriverRemitStatus   RemitStatus    `db:"driver_remit_status"`
	PrepaidByCompany    bool           `db:"prepaid_by_company"`
	PrepaidAmount       Money          `db:"prepaid_amount"`
	SettlementPath      SettlementPath `db:"settlement_path"`
	DeliveredAt         *time.Time     `db:"delivered_at"`
	CreatedAt           time.Time      `db:"created_at"`
}

// Driver wallet: positive means the company owes the driver, negative means the driver owes the company.
type Driver struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Wallet Money  `db:"wallet"`
}

type Client struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type TxType string

const (
	TxCredit TxType = "Credit"
	TxDebit  TxType = "Debit"
)

// TxSource tags why a ledger row was written. Together with order_ref it is unique per subject.
type TxSource string

const (
	SourceDelivery TxSource = "delivery"
	SourcePrepaid  TxSource = "prepaid"
	SourceCash     TxSource = "cash"
)

type DriverTransaction struct {
	ID        string    `db:"id"`
	DriverID  string    `db:"driver_id"`
	Type      TxType    `db:"type"`
	Amount    Money     `db:"amount"`
	OrderRef  string    `db:"order_ref"`
	Source    TxSource  `db:"source"`
	Note      string    `db:"note"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type ClientTransaction struct {
	ID        string    `db:"id"`
	ClientID  string    `db:"client_id"`
	Type      TxType    `db:"type"`
	Amount    Money     `db:"amount"`
	OrderRef  string    `db:"order_ref"`
	Source    TxSource  `db:"source"`
	Note      string    `db:"note"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type AccountingCategory string

const (
	CategoryDeliveryIncome    AccountingCategory = "DeliveryIncome"
	CategoryPrepaidFloat      AccountingCategory = "PrepaidFloat"
	CategoryCapitalInjection  AccountingCategory = "CapitalInjection"
	CategoryCapitalWithdrawal AccountingCategory = "CapitalWithdrawal"
)

type AccountingEntry struct {
	ID        string             `db:"id"`
	Category  AccountingCategory `db:"category"`
	Amount    Money              `db:"amount"`
	OrderRef  string             `db:"order_ref"`
	Memo      string             `db:"memo"`
	CreatedBy string             `db:"created_by"`
	CreatedAt time.Time          `db:"created_at"`
}

// CashboxDaily keeps closing = opening + cash_in - cash_out per currency.
type CashboxDaily struct {
	Date    time.Time `db:"date"`
	Opening Money     `db:"opening"`
	CashIn  Money     `db:"cash_in"`
	CashOut Money     `db:"cash_out"`
	Closing Money     `db:"closing"`
	Notes   string    `db:"notes"`
}

type CashboxDelta struct {
	CashIn  Money
	CashOut Money
}

type StatementKind string

const (
	StatementDriver  StatementKind = "driver"
	StatementClient  StatementKind = "client"
	StatementPrepaid StatementKind = "prepaid"
)

type StatementStatus string

const (
	StatementUnpaid StatementStatus = "unpaid"
	StatementPaid   StatementStatus = "paid"
	// StatementLocked is reserved. Nothing sets it, but a locked statement cannot be paid.
	StatementLocked StatementStatus = "locked"
)

type StatementTotals struct {
	Collected        Money
	DeliveryFees     Money
	DriverPaidRefund Money
	NetDue           Money
}

type Statement struct {
	ID            string          `db:"id"`
	StatementID   string          `db:"statement_id"`
	Kind          StatementKind   `db:"kind"`
	SubjectID     string          `db:"subject_id"`
	PeriodFrom    time.Time       `db:"period_from"`
	PeriodTo      time.Time       `db:"period_to"`
	OrderRefs     []string        `db:"order_refs"`
	Totals        StatementTotals `db:"totals"`
	Status        StatementStatus `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	PaymentNotes  string          `db:"payment_notes"`
	IssuedDate    time.Time       `db:"issued_date"`
	PaidDate      *time.Time      `db:"paid_date"`
	CreatedBy     string          `db:"created_by"`
}

// WalletReconciliation compares a stored wallet with the sum of its signed transactions.
type WalletReconciliation struct {
	DriverID  string
	Wallet    Money
	LedgerSum Money
}

func (r WalletReconciliation) Balanced() bool {
	return r.Wallet.Equal(r.LedgerSum)
}

// DateOnly truncates t to its calendar date in UTC, the key of cashbox rows.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DeletedRows counts ledger rows removed for one order reference.
type DeletedRows struct {
	DriverTransactions int64
	ClientTransactions int64
	AccountingEntries  int64
}
