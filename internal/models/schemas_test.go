package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErr "github.com/feewise/billgraph/pkg/errors"
	"github.com/feewise/billgraph/pkg/utils"
)

func TestExamplesAreValid(t *testing.T) {
	for _, s := range Examples() {
		require.NoError(t, s.Validate(), s.TableName())
	}
}

func TestMinimalKeySetsMatchDeclaration(t *testing.T) {
	for _, s := range Examples() {
		minimal, err := Minimal(s)
		require.NoError(t, err, s.TableName())

		keys := make([]string, 0, len(minimal))
		for k := range minimal {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, s.MinimalFields(), keys, s.TableName())
		assert.Less(t, len(s.MinimalFields()), 8, s.TableName())
	}
}

func TestSplitPartitionsFullAttributeSet(t *testing.T) {
	for _, s := range Examples() {
		full, err := Dump(s)
		require.NoError(t, err)
		minimal, others, err := Split(s)
		require.NoError(t, err)

		require.Equal(t, len(full), len(minimal)+len(others), s.TableName())
		for k := range minimal {
			assert.NotContains(t, others, k, s.TableName())
		}
	}
}

func TestMissingRequiredFieldFailsValidation(t *testing.T) {
	rate := ExampleFeeRate()
	rate.UUID = ""
	err := rate.Validate()
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeValidation))

	entity := ExampleBillingEntity()
	entity.EntityType = ""
	require.Error(t, entity.Validate())

	invoice := ExampleInvoiceInfo()
	invoice.TotalAmount = decimal.Decimal{}
	require.Error(t, invoice.Validate())

	summary := ExampleFeeSummary()
	summary.BillingDate = Date{}
	require.Error(t, summary.Validate())
}

func TestMintedInstancesAreValid(t *testing.T) {
	// Fresh rows built with generated identifiers, not the fixed examples.
	entity := BillingEntity{
		ID:                42,
		UUID:              utils.NewToken(),
		EntityUUID:        utils.NewEntityToken(),
		EntityType:        EntityTypeReseller,
		Name:              ptr("Fresh Reseller"),
		CreatedTimestamp:  MustTimestamp("2025-06-01T00:00:00"),
		ModifiedTimestamp: MustTimestamp("2025-06-01T00:00:00"),
	}
	require.NoError(t, entity.Validate())

	rate := ExampleFeeRate()
	rate.UUID = utils.NewToken()
	rate.BillingEntityUUID = utils.NewToken()
	require.NoError(t, rate.Validate())

	invoice := ExampleInvoiceInfo()
	invoice.UUID = utils.NewToken()
	invoice.BillingEntityUUID = utils.NewToken()
	invoice.EntityUUID = utils.NewEntityToken()
	require.NoError(t, invoice.Validate())

	minimal, err := Minimal(invoice)
	require.NoError(t, err)
	require.NotContains(t, minimal, "uuid")
}

func TestEnumOutsideClosedSetFails(t *testing.T) {
	rate := ExampleFeeRate()
	rate.ApplyType = "SOMETIMES"
	err := rate.Validate()
	require.True(t, appErr.IsCode(err, appErr.CodeValidation))

	settlement := ExampleSettlement()
	settlement.PayableReceivable = "NEITHER"
	require.Error(t, settlement.Validate())
}

func TestStringLengthBoundEnforced(t *testing.T) {
	entity := ExampleBillingEntity()
	entity.UUID = strings.Repeat("X", 27)
	require.Error(t, entity.Validate())

	entity = ExampleBillingEntity()
	entity.EntityUUID = strings.Repeat("X", 14)
	require.Error(t, entity.Validate())
}

func TestFeeRateMinimalProjection(t *testing.T) {
	rate := ExampleFeeRate()
	rate.ApplyType = ApplyTypePerItem
	rate.PerItemAmount = ptr(decimal.RequireFromString("9.99"))
	rate.Percentage = nil
	require.NoError(t, rate.Validate())

	minimal, err := Minimal(rate)
	require.NoError(t, err)

	assert.Equal(t, "9.99", minimal["per_item_amount"])
	assert.Equal(t, "PER_ITEM", minimal["apply_type"])
	assert.NotContains(t, minimal, "uuid")
	assert.NotContains(t, minimal, "billing_entity_uuid")

	// Unset optionals keep their key, with a null value.
	assert.Contains(t, minimal, "percentage")
	assert.Nil(t, minimal["percentage"])
}

func TestUnsetOptionalMinimalFieldsAreNull(t *testing.T) {
	tax := ExampleFeeTax()
	tax.Tax1Amount = nil
	tax.Tax2Amount = nil
	tax.Tax1Rate = nil
	tax.Tax2Rate = nil
	require.NoError(t, tax.Validate())

	minimal, err := Minimal(tax)
	require.NoError(t, err)
	require.Len(t, minimal, len(tax.MinimalFields()))
	for _, k := range tax.MinimalFields() {
		v, ok := minimal[k]
		require.True(t, ok, k)
		require.Nil(t, v, k)
	}
}

func TestDecimalScaleBoundary(t *testing.T) {
	rate := ExampleFeeRate()

	// A fourth fractional digit exceeds the declared three decimal places.
	rate.PerItemAmount = ptr(decimal.RequireFromString("99.9901"))
	err := rate.Validate()
	require.True(t, appErr.IsCode(err, appErr.CodeValidation))

	rate.PerItemAmount = ptr(decimal.RequireFromString("99.990"))
	require.NoError(t, rate.Validate())

	raw, err := json.Marshal(rate)
	require.NoError(t, err)
	var back FeeRate
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, "99.990", back.PerItemAmount.String())
}

func TestDecimalDigitBudget(t *testing.T) {
	invoice := ExampleInvoiceInfo()

	invoice.TotalAmount = decimal.RequireFromString("1234567890.123")
	require.Error(t, invoice.Validate())

	invoice.TotalAmount = decimal.RequireFromString("999999999.999")
	require.NoError(t, invoice.Validate())

	rate := ExampleFeeRate()
	rate.Percentage = ptr(decimal.RequireFromString("100.00"))
	require.NoError(t, rate.Validate())
	rate.Percentage = ptr(decimal.RequireFromString("1000.00"))
	require.Error(t, rate.Validate())
}

func TestRoundTrip(t *testing.T) {
	for _, s := range Examples() {
		raw, err := json.Marshal(s)
		require.NoError(t, err, s.TableName())

		fresh := reflect.New(reflect.TypeOf(s)).Interface()
		require.NoError(t, json.Unmarshal(raw, fresh), s.TableName())

		again, err := json.Marshal(fresh)
		require.NoError(t, err, s.TableName())
		require.Equal(t, string(raw), string(again), s.TableName())
	}
}

func TestRoundTripSettlementFields(t *testing.T) {
	s := ExampleSettlement()
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back Settlement
	require.NoError(t, json.Unmarshal(raw, &back))

	require.Equal(t, s.UUID, back.UUID)
	require.Equal(t, s.PayableReceivable, back.PayableReceivable)
	require.True(t, back.TotalAmount.Equal(s.TotalAmount))
	require.True(t, back.Tax1Amount.Equal(s.Tax1Amount))
	require.True(t, back.SettlementDate.Equal(s.SettlementDate.Time))
	require.True(t, back.CreatedTimestamp.Equal(s.CreatedTimestamp.Time))
}
