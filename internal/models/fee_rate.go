package models

import "github.com/shopspring/decimal"

// ApplyType describes how a fee rate is applied when a fee is calculated.
type ApplyType string

const (
	ApplyTypeDefault    ApplyType = "DEFAULT"
	ApplyTypePerItem    ApplyType = "PER_ITEM"
	ApplyTypePercentage ApplyType = "PERCENTAGE"
	ApplyTypeBoth       ApplyType = "BOTH"
	ApplyTypeNone       ApplyType = "NONE"
	ApplyTypeFlat       ApplyType = "FLAT"
)

// FeeRate mirrors one row of the `fee_rate` table.
type FeeRate struct {
	ID                int64            `json:"id" validate:"required,gt=0"`
	UUID              string           `json:"uuid" validate:"required,max=26"`
	BillingEntityUUID string           `json:"billing_entity_uuid" validate:"required,max=26"`
	FeeCategory       string           `json:"fee_category" validate:"required,max=25"`
	FeeCode           string           `json:"fee_code" validate:"required,max=25"`
	Currency          string           `json:"currency" validate:"required,max=3"`
	EffectiveDate     Date             `json:"effective_date" validate:"required"`
	ApplyType         ApplyType        `json:"apply_type" validate:"required,oneof=DEFAULT PER_ITEM PERCENTAGE BOTH NONE FLAT"`
	PerItemAmount     *decimal.Decimal `json:"per_item_amount" validate:"omitempty,dec=12.3"`
	Percentage        *decimal.Decimal `json:"percentage" validate:"omitempty,dec=5.2"`
	CreatedTimestamp  Timestamp        `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp Timestamp        `json:"modified_timestamp" validate:"required"`
	AuditID           *string          `json:"audit_id" validate:"omitempty,max=26"`
}

func (FeeRate) TableName() string { return "fee_rate" }

func (FeeRate) MinimalFields() []string {
	return []string{
		"fee_category",
		"fee_code",
		"currency",
		"apply_type",
		"per_item_amount",
		"percentage",
		"effective_date",
	}
}

func (e FeeRate) Validate() error { return check(e) }

// ExampleFeeRate returns the canonical sample row used by the schema
// self-test.
func ExampleFeeRate() FeeRate {
	return FeeRate{
		ID:                1,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		BillingEntityUUID: "01H8X7Y7Z7QWERTYUIOPASDFGZ",
		FeeCategory:       "RECURRING",
		FeeCode:           "MONTHLY_FEE",
		Currency:          "USD",
		EffectiveDate:     MustDate("2023-10-01"),
		ApplyType:         ApplyTypePerItem,
		PerItemAmount:     ptr(decimal.RequireFromString("29.990")),
		CreatedTimestamp:  MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp: MustTimestamp("2023-10-27T10:00:00.123456"),
		AuditID:           ptr("01H8X7Y7Z7QWERTYUIOPASDFGA"),
	}
}
