package models

// LedgerAccount mirrors one row of the `ledger_account` table.
type LedgerAccount struct {
	ID                int64     `json:"id" validate:"required,gt=0"`
	UUID              string    `json:"uuid" validate:"required,max=26"`
	LedgerAccountKey  string    `json:"ledger_account_key" validate:"required,max=32"`
	BillingEntityUUID string    `json:"billing_entity_uuid" validate:"required,max=26"`
	GLCode            *string   `json:"gl_code" validate:"omitempty,max=40"`
	CreatedTimestamp  Timestamp `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp Timestamp `json:"modified_timestamp" validate:"required"`
}

func (LedgerAccount) TableName() string { return "ledger_account" }

func (LedgerAccount) MinimalFields() []string {
	return []string{"ledger_account_key", "gl_code"}
}

func (e LedgerAccount) Validate() error { return check(e) }

// ExampleLedgerAccount returns the canonical sample row used by the schema
// self-test.
func ExampleLedgerAccount() LedgerAccount {
	return LedgerAccount{
		ID:                1,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		LedgerAccountKey:  "REVENUE_RECURRING",
		BillingEntityUUID: "01H8X7Y7Z7QWERTYUIOPASDFGX",
		GLCode:            ptr("4000-001"),
		CreatedTimestamp:  MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp: MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
