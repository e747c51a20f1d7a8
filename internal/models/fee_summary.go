package models

import "github.com/shopspring/decimal"

// FeeSummary mirrors one row of the `fee_summary` table: the per-period
// rollup a fee rate produces for one billing entity.
type FeeSummary struct {
	ID                       int64           `json:"id" validate:"required,gt=0"`
	UUID                     string          `json:"uuid" validate:"required,max=26"`
	BillingEntityUUID        string          `json:"billing_entity_uuid" validate:"required,max=26"`
	BillingDate              Date            `json:"billing_date" validate:"required"`
	FeeCategory              string          `json:"fee_category" validate:"required,max=25"`
	FeeCode                  string          `json:"fee_code" validate:"required,max=25"`
	Currency                 string          `json:"currency" validate:"required,max=3"`
	TotalPeriodUnits         decimal.Decimal `json:"total_period_units" validate:"required,dec=12.4"`
	AbsPeriodUnits           decimal.Decimal `json:"abs_period_units" validate:"required,dec=12.4"`
	TotalBasisAmount         decimal.Decimal `json:"total_basis_amount" validate:"required,dec=12.3"`
	AbsBasisAmount           decimal.Decimal `json:"abs_basis_amount" validate:"required,dec=12.3"`
	TotalFeeAmount           decimal.Decimal `json:"total_fee_amount" validate:"required,dec=12.3"`
	FeeRateUUID              string          `json:"fee_rate_uuid" validate:"required,max=26"`
	RequestUUID              string          `json:"request_uuid" validate:"required,max=26"`
	InvoiceInfoUUID          *string         `json:"invoice_info_uuid" validate:"omitempty,max=26"`
	FeeCodeLedgerAccountUUID *string         `json:"fee_code_ledger_account_uuid" validate:"omitempty,max=26"`
	CreditLedgerAccountUUID  *string         `json:"credit_ledger_account_uuid" validate:"omitempty,max=26"`
	DebitLedgerAccountUUID   *string         `json:"debit_ledger_account_uuid" validate:"omitempty,max=26"`
	ExcludeFromInvoice       int             `json:"exclude_from_invoice"`
	CreatedTimestamp         Timestamp       `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp        Timestamp       `json:"modified_timestamp" validate:"required"`
}

func (FeeSummary) TableName() string { return "fee_summary" }

func (FeeSummary) MinimalFields() []string {
	return []string{"total_period_units", "total_fee_amount", "total_basis_amount"}
}

func (e FeeSummary) Validate() error { return check(e) }

// ExampleFeeSummary returns the canonical sample row used by the schema
// self-test.
func ExampleFeeSummary() FeeSummary {
	return FeeSummary{
		ID:                       1,
		UUID:                     "01H8X7Y7Z7QWERTYUIOPASDFGH",
		BillingEntityUUID:        "01H8X7Y7Z7QWERTYUIOPASDFGX",
		BillingDate:              MustDate("2023-10-27"),
		FeeCategory:              "RECURRING",
		FeeCode:                  "MONTHLY_FEE",
		Currency:                 "USD",
		TotalPeriodUnits:         decimal.RequireFromString("1.0000"),
		AbsPeriodUnits:           decimal.RequireFromString("1.0000"),
		TotalBasisAmount:         decimal.RequireFromString("29.990"),
		AbsBasisAmount:           decimal.RequireFromString("29.990"),
		TotalFeeAmount:           decimal.RequireFromString("29.990"),
		FeeRateUUID:              "01H8X7Y7Z7QWERTYUIOPASDFGY",
		RequestUUID:              "01H8X7Y7Z7QWERTYUIOPASDFGZ",
		InvoiceInfoUUID:          ptr("01H8X7Y7Z7QWERTYUIOPASDFG1"),
		FeeCodeLedgerAccountUUID: ptr("01H8X7Y7Z7QWERTYUIOPASDFG2"),
		CreditLedgerAccountUUID:  ptr("01H8X7Y7Z7QWERTYUIOPASDFG3"),
		DebitLedgerAccountUUID:   ptr("01H8X7Y7Z7QWERTYUIOPASDFG4"),
		ExcludeFromInvoice:       0,
		CreatedTimestamp:         MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp:        MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
