package models

import "github.com/shopspring/decimal"

// PayableReceivable marks the direction of a settlement.
type PayableReceivable string

const (
	Payable    PayableReceivable = "PAYABLE"
	Receivable PayableReceivable = "RECEIVABLE"
)

// Settlement mirrors one row of the `settlement` table.
type Settlement struct {
	ID                     int64             `json:"id" validate:"required,gt=0"`
	UUID                   string            `json:"uuid" validate:"required,max=26"`
	SettlementDate         Date              `json:"settlement_date" validate:"required"`
	BillingEntityUUID      string            `json:"billing_entity_uuid" validate:"required,max=26"`
	EntityUUID             string            `json:"entity_uuid" validate:"required,max=13"`
	AlternateID            *string           `json:"alternate_id" validate:"omitempty,max=30"`
	PayableReceivable      PayableReceivable `json:"payable_receivable" validate:"required,oneof=PAYABLE RECEIVABLE"`
	Currency               string            `json:"currency" validate:"required,max=3"`
	TotalAmount            decimal.Decimal   `json:"total_amount" validate:"required,dec=12.3"`
	FeeAmount              decimal.Decimal   `json:"fee_amount" validate:"required,dec=12.3"`
	Tax1Amount             decimal.Decimal   `json:"tax1_amount" validate:"omitempty,dec=12.3"`
	Tax2Amount             decimal.Decimal   `json:"tax2_amount" validate:"omitempty,dec=12.3"`
	Tax3Amount             decimal.Decimal   `json:"tax3_amount" validate:"omitempty,dec=12.3"`
	Tax4Amount             decimal.Decimal   `json:"tax4_amount" validate:"omitempty,dec=12.3"`
	LookupLedgerAccountKey string            `json:"lookup_ledger_account_key" validate:"required,max=32"`
	GLCode                 *string           `json:"gl_code" validate:"omitempty,max=40"`
	ItemCode               *string           `json:"item_code" validate:"omitempty,max=30"`
	LastInvoiceNum         *string           `json:"last_invoice_num" validate:"omitempty,max=30"`
	RequestUUID            *string           `json:"request_uuid" validate:"omitempty,max=26"`
	CreatedTimestamp       Timestamp         `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp      Timestamp         `json:"modified_timestamp" validate:"required"`
}

func (Settlement) TableName() string { return "settlement" }

func (Settlement) MinimalFields() []string {
	return []string{
		"settlement_date",
		"payable_receivable",
		"currency",
		"total_amount",
		"fee_amount",
	}
}

func (e Settlement) Validate() error { return check(e) }

// ExampleSettlement returns the canonical sample row used by the schema
// self-test.
func ExampleSettlement() Settlement {
	return Settlement{
		ID:                     1,
		UUID:                   "01H8X7Y7Z7QWERTYUIOPASDFGH",
		SettlementDate:         MustDate("2023-11-01"),
		BillingEntityUUID:      "01H8X7Y7Z7QWERTYUIOPASDFGZ",
		EntityUUID:             "01H8X7Y7Z7QWE",
		AlternateID:            ptr("SETTLE-2023-001"),
		PayableReceivable:      Payable,
		Currency:               "USD",
		TotalAmount:            decimal.RequireFromString("1234.567"),
		FeeAmount:              decimal.RequireFromString("123.456"),
		Tax1Amount:             decimal.RequireFromString("12.345"),
		Tax2Amount:             decimal.RequireFromString("0.000"),
		Tax3Amount:             decimal.RequireFromString("0.000"),
		Tax4Amount:             decimal.RequireFromString("0.000"),
		LookupLedgerAccountKey: "MERCHANT_PAYABLE_USD",
		GLCode:                 ptr("2100-001"),
		ItemCode:               ptr("MERCHANT_FEE"),
		LastInvoiceNum:         ptr("INV-2023-001234"),
		RequestUUID:            ptr("01H8X7Y7Z7QWERTYUIOPASDFGA"),
		CreatedTimestamp:       MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp:      MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
