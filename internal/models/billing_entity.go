package models

// EntityType classifies a billing entity.
type EntityType string

const (
	EntityTypeMerchant  EntityType = "MERCHANT"
	EntityTypeReseller  EntityType = "RESELLER"
	EntityTypeDeveloper EntityType = "DEVELOPER"
	EntityTypePseudo    EntityType = "PSEUDO"
	EntityTypeArchetype EntityType = "ARCHETYPE"
)

// BillingEntity mirrors one row of the `billing_entity` table.
type BillingEntity struct {
	ID                int64      `json:"id" validate:"required,gt=0"`
	UUID              string     `json:"uuid" validate:"required,max=26"`
	EntityUUID        string     `json:"entity_uuid" validate:"required,max=13"`
	EntityType        EntityType `json:"entity_type" validate:"required,oneof=MERCHANT RESELLER DEVELOPER PSEUDO ARCHETYPE"`
	Name              *string    `json:"name" validate:"omitempty,max=127"`
	CreatedTimestamp  Timestamp  `json:"created_timestamp" validate:"required"`
	ModifiedTimestamp Timestamp  `json:"modified_timestamp" validate:"required"`
}

func (BillingEntity) TableName() string { return "billing_entity" }

func (BillingEntity) MinimalFields() []string {
	return []string{"entity_type", "name"}
}

func (e BillingEntity) Validate() error { return check(e) }

// ExampleBillingEntity returns the canonical sample row used by the schema
// self-test.
func ExampleBillingEntity() BillingEntity {
	return BillingEntity{
		ID:                1,
		UUID:              "01H8X7Y7Z7QWERTYUIOPASDFGH",
		EntityUUID:        "01H8X7Y7Z7QWE",
		EntityType:        EntityTypeMerchant,
		Name:              ptr("Acme Corporation"),
		CreatedTimestamp:  MustTimestamp("2023-10-27T10:00:00.123456"),
		ModifiedTimestamp: MustTimestamp("2023-10-27T10:00:00.123456"),
	}
}
