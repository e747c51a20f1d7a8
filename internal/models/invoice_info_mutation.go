package models

import "github.com/shopspring/decimal"

// MutationAction tags what happened to the mutated row.
type MutationAction string

const (
	MutationUpdate MutationAction = "UPDATE"
	MutationDelete MutationAction = "DELETE"
)

// InvoiceInfoMutation mirrors one row of the `invoice_info_mutation` audit
// table: a snapshot of an invoice_info row at the moment it was updated or
// deleted. Every copied column is nullable.
type InvoiceInfoMutation struct {
	ID                int64            `json:"id" validate:"required,gt=0"`
	MutationAction    MutationAction   `json:"mutation_action" validate:"required,oneof=UPDATE DELETE"`
	MutationTimestamp Timestamp        `json:"mutation_timestamp" validate:"required"`
	InvoiceInfoID     int64            `json:"invoice_info_id" validate:"required,gt=0"`
	UUID              string           `json:"uuid" validate:"required,max=26"`
	BillingEntityUUID *string          `json:"billing_entity_uuid" validate:"omitempty,max=26"`
	EntityUUID        *string          `json:"entity_uuid" validate:"omitempty,max=13"`
	AlternateID       *string          `json:"alternate_id" validate:"omitempty,max=25"`
	BillingDate       *Date            `json:"billing_date"`
	InvoiceNum        *string          `json:"invoice_num" validate:"omitempty,max=30"`
	Currency          *string          `json:"currency" validate:"omitempty,max=3"`
	TotalAmount       *decimal.Decimal `json:"total_amount" validate:"omitempty,dec=12.3"`
	DocumentUUID      *string          `json:"document_uuid" validate:"omitempty,max=26"`
	RequestUUID       *string          `json:"request_uuid" validate:"omitempty,max=26"`
	CreatedTimestamp  *Timestamp       `json:"created_timestamp"`
}

func (InvoiceInfoMutation) TableName() string { return "invoice_info_mutation" }

func (InvoiceInfoMutation) MinimalFields() []string {
	return []string{
		"mutation_action",
		"billing_date",
		"invoice_num",
		"currency",
		"total_amount",
	}
}

func (e InvoiceInfoMutation) Validate() error { return check(e) }

// ExampleInvoiceInfoMutation returns the canonical sample row used by the
// schema self-test.
func ExampleInvoiceInfoMutation() InvoiceInfoMutation {
	return InvoiceInfoMutation{
		ID:                1,
		MutationAction:    MutationUpdate,
		MutationTimestamp: MustTimestamp("2023-10-27T11:00:00.123456"),
		InvoiceInfoID:     42,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		BillingEntityUUID: ptr("01H8X7Y7Z7QWERTYUIOPASDFGX"),
		EntityUUID:        ptr("01H8X7Y7Z7Q12"),
		AlternateID:       ptr("CUST-12345"),
		BillingDate:       ptr(MustDate("2023-10-27")),
		InvoiceNum:        ptr("INV-2023-10-001"),
		Currency:          ptr("USD"),
		TotalAmount:       ptr(decimal.RequireFromString("149.95")),
		DocumentUUID:      ptr("01H8X7Y7Z7QWERTYUIOPASDFGY"),
		RequestUUID:       ptr("01H8X7Y7Z7QWERTYUIOPASDFGZ"),
		CreatedTimestamp:  ptr(MustTimestamp("2023-10-27T10:00:00.123456")),
	}
}
