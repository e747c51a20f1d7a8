package utils

import (
	"strings"
	"testing"
)

func TestNewTokenShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewToken()
		if len(tok) != 26 {
			t.Fatalf("expected 26 characters, got %d (%s)", len(tok), tok)
		}
		for _, r := range tok {
			if !strings.ContainsRune(tokenAlphabet, r) {
				t.Fatalf("character %q outside token alphabet in %s", r, tok)
			}
		}
		if seen[tok] {
			t.Fatalf("duplicate token %s", tok)
		}
		seen[tok] = true
	}
}

func TestNewEntityTokenShape(t *testing.T) {
	if tok := NewEntityToken(); len(tok) != 13 {
		t.Fatalf("expected 13 characters, got %d", len(tok))
	}
}
