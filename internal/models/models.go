package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	appErr "github.com/feewise/billgraph/pkg/errors"
)

// Schema is implemented by every billing table definition. An instance is one
// immutable snapshot of one database row.
type Schema interface {
	// TableName reports the table the schema mirrors.
	TableName() string
	// MinimalFields lists the attribute names forming the reduced "headline"
	// view of the table. Fewer than eight per table; identifiers and join
	// keys are excluded in favor of amount-determining fields.
	MinimalFields() []string
	// Validate checks the instance against its declared field constraints.
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("dec", decimalBounds); err != nil {
		panic(err)
	}
	return v
}

// decimalBounds enforces digit bounds on decimal columns, tagged as
// dec=<max_digits>.<decimal_places>. Digits are counted the way the database
// column does: significant coefficient digits, leading zeros ignored.
func decimalBounds(fl validator.FieldLevel) bool {
	var d decimal.Decimal
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return true
		}
		d = *v
	default:
		return false
	}

	maxStr, placesStr, ok := strings.Cut(fl.Param(), ".")
	if !ok {
		return false
	}
	maxDigits, err := strconv.Atoi(maxStr)
	if err != nil {
		return false
	}
	places, err := strconv.Atoi(placesStr)
	if err != nil {
		return false
	}

	s := strings.TrimPrefix(d.String(), "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	digits := len(strings.TrimLeft(intPart+fracPart, "0"))
	if digits == 0 {
		digits = 1
	}
	frac := len(fracPart)
	return frac <= places && digits <= maxDigits && digits-frac <= maxDigits-places
}

// check runs struct validation and folds failures into the single
// construction-validation error kind.
func check(s Schema) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ae := appErr.Wrap(err, appErr.CodeValidation, s.TableName()+" failed validation")
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ae.WithMeta(fe.Field(), fe.Tag())
		}
	}
	return ae
}

// Dump renders a schema instance into its full attribute map. Values come out
// in their serialized form: decimals as strings, dates and timestamps as
// ISO-8601 strings, enum tags as plain strings. Unset optional attributes are
// present with a nil value.
func Dump(s Schema) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dump "+s.TableName())
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "dump "+s.TableName())
	}
	return out, nil
}

// Minimal returns the reduced view of an instance: Dump filtered to the
// type's minimal field set. The key set is always exactly MinimalFields;
// unset optionals keep their key with a nil value.
func Minimal(s Schema) (map[string]any, error) {
	minimal, _, err := Split(s)
	return minimal, err
}

// Split partitions the full attribute map into the minimal view and the
// "others" bucket (everything the minimal set leaves out).
func Split(s Schema) (minimal, others map[string]any, err error) {
	full, err := Dump(s)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]struct{}, len(s.MinimalFields()))
	for _, name := range s.MinimalFields() {
		names[name] = struct{}{}
	}
	minimal = make(map[string]any, len(names))
	others = make(map[string]any, len(full)-len(names))
	for k, v := range full {
		if _, ok := names[k]; ok {
			minimal[k] = v
		} else {
			others[k] = v
		}
	}
	return minimal, others, nil
}

// Examples returns the canonical sample instance of every schema, in table
// order. This drives the schema self-test CLI.
func Examples() []Schema {
	return []Schema{
		ExampleAdjustAction(),
		ExampleBillingEntity(),
		ExampleFeeCode(),
		ExampleFeeRate(),
		ExampleFeeSummary(),
		ExampleFeeTax(),
		ExampleInvoiceInfo(),
		ExampleInvoiceInfoMutation(),
		ExampleLedgerAccount(),
		ExampleSettlement(),
	}
}

// ExampleName is the hyphenated schema name used by the self-test markers.
func ExampleName(s Schema) string {
	return strings.ReplaceAll(s.TableName(), "_", "-")
}

func ptr[T any](v T) *T { return &v }
