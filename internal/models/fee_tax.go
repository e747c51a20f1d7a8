package models

import "github.com/shopspring/decimal"

// FeeTax mirrors one row of the `fee_tax` table: up to four tax lines applied
// to one fee summary. Every amount and rate column is nullable.
type FeeTax struct {
	ID               int64            `json:"id" validate:"required,gt=0"`
	UUID             string           `json:"uuid" validate:"required,max=26"`
	FeeSummaryUUID   string           `json:"fee_summary_uuid" validate:"required,max=26"`
	Tax1Amount       *decimal.Decimal `json:"tax1_amount" validate:"omitempty,dec=12.3"`
	Tax2Amount       *decimal.Decimal `json:"tax2_amount" validate:"omitempty,dec=12.3"`
	Tax3Amount       *decimal.Decimal `json:"tax3_amount" validate:"omitempty,dec=12.3"`
	Tax4Amount       *decimal.Decimal `json:"tax4_amount" validate:"omitempty,dec=12.3"`
	Tax1Rate         *decimal.Decimal `json:"tax1_rate" validate:"omitempty,dec=7.4"`
	Tax2Rate         *decimal.Decimal `json:"tax2_rate" validate:"omitempty,dec=7.4"`
	Tax3Rate         *decimal.Decimal `json:"tax3_rate" validate:"omitempty,dec=7.4"`
	Tax4Rate         *decimal.Decimal `json:"tax4_rate" validate:"omitempty,dec=7.4"`
	CreatedTimestamp Timestamp        `json:"created_timestamp" validate:"required"`
}

func (FeeTax) TableName() string { return "fee_tax" }

func (FeeTax) MinimalFields() []string {
	return []string{"tax1_amount", "tax2_amount", "tax1_rate", "tax2_rate"}
}

func (e FeeTax) Validate() error { return check(e) }

// ExampleFeeTax returns the canonical sample row used by the schema
// self-test. Tax lines three and four stay null.
func ExampleFeeTax() FeeTax {
	return FeeTax{
		ID:               1,
		UUID:             "01H8X7Y7Z7QWERTYUIOPASDFGH",
		FeeSummaryUUID:   "01H8X7Y7Z7QWERTYUIOPASDFGX",
		Tax1Amount:       ptr(decimal.RequireFromString("2.400")),
		Tax2Amount:       ptr(decimal.RequireFromString("1.800")),
		Tax1Rate:         ptr(decimal.RequireFromString("0.0800")),
		Tax2Rate:         ptr(decimal.RequireFromString("0.0600")),
		CreatedTimestamp: MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
