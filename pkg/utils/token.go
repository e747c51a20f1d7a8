package utils

import "github.com/google/uuid"

// tokenAlphabet is the base-32 alphabet used by uuid columns across the
// billing tables (no I, L, O, U).
const tokenAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewToken returns a fresh 26-character base-32 row identifier derived from a
// random UUID. 128 bits encode into 25 full five-bit groups plus a final
// padded group.
func NewToken() string {
	id := uuid.New()
	out := make([]byte, 0, 26)
	var acc uint32
	var bits uint
	for _, b := range id {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, tokenAlphabet[(acc>>bits)&31])
		}
	}
	if bits > 0 {
		out = append(out, tokenAlphabet[(acc<<(5-bits))&31])
	}
	return string(out)
}

// NewEntityToken returns the short 13-character form used by entity_uuid
// columns.
func NewEntityToken() string {
	return NewToken()[:13]
}
