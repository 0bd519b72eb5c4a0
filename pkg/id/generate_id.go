package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewPrefixed returns "<PREFIX>-" followed by 12 hex characters,
// e.g. "TRX-9f2a11c04be7". Used for ids that end up on printed receipts.
func NewPrefixed(prefix string) string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return strings.ToUpper(prefix) + "-" + hex.EncodeToString(b)
}
