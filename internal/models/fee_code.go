package models

// FeeCode mirrors one row of the `fee_code` table: the catalog entry behind a
// fee_category/fee_code pair.
type FeeCode struct {
	ID                int64     `json:"id" validate:"required,gt=0"`
	UUID              string    `json:"uuid" validate:"required,max=26"`
	FeeCategory       string    `json:"fee_category" validate:"required,max=25"`
	FeeCode           string    `json:"fee_code" validate:"required,max=25"`
	ShortDesc         string    `json:"short_desc" validate:"required,max=40"`
	FullDesc          *string   `json:"full_desc" validate:"omitempty,max=255"`
	SortOrder         int       `json:"sort_order"`
	CreatedTimestamp  Timestamp `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp Timestamp `json:"modified_timestamp" validate:"required"`
}

func (FeeCode) TableName() string { return "fee_code" }

func (FeeCode) MinimalFields() []string {
	return []string{"fee_category", "fee_code", "short_desc", "sort_order"}
}

func (e FeeCode) Validate() error { return check(e) }

// ExampleFeeCode returns the canonical sample row used by the schema
// self-test.
func ExampleFeeCode() FeeCode {
	return FeeCode{
		ID:                1,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		FeeCategory:       "RECURRING",
		FeeCode:           "MONTHLY_FEE",
		ShortDesc:         "Monthly subscription fee",
		FullDesc:          ptr("Standard monthly subscription fee for basic service plan"),
		SortOrder:         10,
		CreatedTimestamp:  MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp: MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
