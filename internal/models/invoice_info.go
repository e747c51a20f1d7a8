package models

import "github.com/shopspring/decimal"

// InvoiceInfo mirrors one row of the `invoice_info` table.
type InvoiceInfo struct {
	ID                int64           `json:"id" validate:"required,gt=0"`
	UUID              string          `json:"uuid" validate:"required,max=26"`
	BillingEntityUUID string          `json:"billing_entity_uuid" validate:"required,max=26"`
	EntityUUID        string          `json:"entity_uuid" validate:"required,max=13"`
	AlternateID       *string         `json:"alternate_id" validate:"omitempty,max=25"`
	BillingDate       Date            `json:"billing_date" validate:"required"`
	InvoiceNum        string          `json:"invoice_num" validate:"required,max=30"`
	Currency          string          `json:"currency" validate:"required,max=3"`
	TotalAmount       decimal.Decimal `json:"total_amount" validate:"required,dec=12.3"`
	DocumentUUID      *string         `json:"document_uuid" validate:"omitempty,max=26"`
	RequestUUID       *string         `json:"request_uuid" validate:"omitempty,max=26"`
	CreatedTimestamp  Timestamp       `json:"created_timestamp" validate:"required"`
}

func (InvoiceInfo) TableName() string { return "invoice_info" }

func (InvoiceInfo) MinimalFields() []string {
	return []string{"billing_date", "invoice_num", "currency", "total_amount"}
}

func (e InvoiceInfo) Validate() error { return check(e) }

// ExampleInvoiceInfo returns the canonical sample row used by the schema
// self-test.
func ExampleInvoiceInfo() InvoiceInfo {
	return InvoiceInfo{
		ID:                1,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		BillingEntityUUID: "01H8X7Y7Z7QWERTYUIOPASDFGX",
		EntityUUID:        "01H8X7Y7Z7Q12",
		AlternateID:       ptr("CUST-12345"),
		BillingDate:       MustDate("2023-10-27"),
		InvoiceNum:        "INV-2023-10-001",
		Currency:          "USD",
		TotalAmount:       decimal.RequireFromString("149.95"),
		DocumentUUID:      ptr("01H8X7Y7Z7QWERTYUIOPASDFGY"),
		RequestUUID:       ptr("01H8X7Y7Z7QWERTYUIOPASDFGZ"),
		CreatedTimestamp:  MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
