// Package id generates the public identifiers exposed on the API for
// customers and loans. They are opaque and carry no ordering.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns 16 random bytes as 32 lowercase hex characters, the
// format the hex32 request validation accepts.
func NewID32() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
