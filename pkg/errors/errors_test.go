package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(CodeValidation, "fee_rate failed validation")
	wrapped := fmt.Errorf("building graph: %w", base)

	if !IsCode(wrapped, CodeValidation) {
		t.Fatal("expected CodeValidation through wrapping")
	}
	if IsCode(wrapped, CodeConflict) {
		t.Fatal("unexpected CodeConflict match")
	}
	if IsCode(stderrors.New("plain"), CodeValidation) {
		t.Fatal("plain error should not match any code")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CodeInternal, "marshal graph document")
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if got := err.Error(); got != "internal: marshal graph document: boom" {
		t.Fatalf("unexpected error string: %s", got)
	}
}

func TestWithMeta(t *testing.T) {
	err := New(CodeValidation, "edge references unknown node").WithMeta("id", "settlement_9")
	if err.Meta["id"] != "settlement_9" {
		t.Fatalf("unexpected meta: %v", err.Meta)
	}
}
