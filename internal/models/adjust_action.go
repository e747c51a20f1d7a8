package models

import "github.com/shopspring/decimal"

// AdjustAction mirrors one row of the `adjust_action` table: a manual or
// automated adjustment posted against a settlement.
type AdjustAction struct {
	ID                      int64           `json:"id" validate:"required,gt=0"`
	UUID                    string          `json:"uuid" validate:"required,max=26"`
	BillingEntityUUID       string          `json:"billing_entity_uuid" validate:"required,max=26"`
	SettlementUUID          string          `json:"settlement_uuid" validate:"required,max=26"`
	DeveloperUUID           *string         `json:"developer_uuid" validate:"omitempty,max=13"`
	DeveloperAppUUID        *string         `json:"developer_app_uuid" validate:"omitempty,max=13"`
	AdjustReason            string          `json:"adjust_reason" validate:"required,max=20"`
	AdjustActionType        string          `json:"adjust_action_type" validate:"required,max=25"`
	FeeCategory             string          `json:"fee_category" validate:"required,max=25"`
	FeeCode                 string          `json:"fee_code" validate:"required,max=25"`
	ActionDatetime          Timestamp       `json:"action_datetime" validate:"required"`
	NumUnits                int             `json:"num_units"`
	UnitsInPeriod           int             `json:"units_in_period" validate:"gte=0"`
	BasisAmount             decimal.Decimal `json:"basis_amount" validate:"omitempty,dec=12.3"`
	BasisCurrency           *string         `json:"basis_currency" validate:"omitempty,max=3"`
	Reference               *string         `json:"reference" validate:"omitempty,max=50"`
	AdjustActionFeeCodeUUID *string         `json:"adjust_action_fee_code_uuid" validate:"omitempty,max=26"`
	FeeUUID                 *string         `json:"fee_uuid" validate:"omitempty,max=26"`
	EventUUID               *string         `json:"event_uuid" validate:"omitempty,max=26"`
	RequestUUID             *string         `json:"request_uuid" validate:"omitempty,max=26"`
	DateToPost              *Date           `json:"date_to_post"`
	PostingDate             *Date           `json:"posting_date"`
	CreatedTimestamp        Timestamp       `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp       Timestamp       `json:"modified_timestamp" validate:"required"`
}

func (AdjustAction) TableName() string { return "adjust_action" }

func (AdjustAction) MinimalFields() []string {
	return []string{
		"adjust_reason",
		"adjust_action_type",
		"fee_category",
		"fee_code",
		"num_units",
		"units_in_period",
	}
}

func (e AdjustAction) Validate() error { return check(e) }

// ExampleAdjustAction returns the canonical sample row used by the schema
// self-test.
func ExampleAdjustAction() AdjustAction {
	return AdjustAction{
		ID:                      1,
		UUID:                    "01H8X7Y7Z7QWERTYUIOPASDFGH",
		BillingEntityUUID:       "01H8X7Y7Z7QWERTYUIOPASDFGZ",
		SettlementUUID:          "01H8X7Y7Z7QWERTYUIOPASDFGX",
		DeveloperUUID:           ptr("01H8X7Y7Z7QWE"),
		DeveloperAppUUID:        ptr("01H8X7Y7Z7QWR"),
		AdjustReason:            "REFUND",
		AdjustActionType:        "CREDIT_ADJUSTMENT",
		FeeCategory:             "RECURRING",
		FeeCode:                 "MONTHLY_FEE",
		ActionDatetime:          MustTimestamp("2023-10-27T10:00:00.123456"),
		NumUnits:                1,
		UnitsInPeriod:           1,
		BasisAmount:             decimal.RequireFromString("99.990"),
		BasisCurrency:           ptr("USD"),
		Reference:               ptr("Customer Refund Request"),
		AdjustActionFeeCodeUUID: ptr("01H8X7Y7Z7QWERTYUIOPASDFGA"),
		FeeUUID:                 ptr("01H8X7Y7Z7QWERTYUIOPASDFGB"),
		EventUUID:               ptr("01H8X7Y7Z7QWERTYUIOPASDFGC"),
		RequestUUID:             ptr("01H8X7Y7Z7QWERTYUIOPASDFGD"),
		DateToPost:              ptr(MustDate("2023-11-01")),
		PostingDate:             ptr(MustDate("2023-11-01")),
		CreatedTimestamp:        MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp:       MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
