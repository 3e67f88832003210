package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKind separates fingerprint namespaces so equal text stored as a wax
// and as a world never yields the same key.
type HashKind string

const (
	HashKindWax   HashKind = "waxworks/wax/v1"
	HashKindWorld HashKind = "waxworks/world/v1"
)

// ContentHashLen is the length of a hex-encoded fingerprint (SHA-256).
const ContentHashLen = 64

// ContentHash returns the hex SHA-256 of kind || 0x00 || NormalizeContent(content).
//
// With a 256-bit digest the chance of any collision among n stored rows is
// about n^2 / 2^257; a collision is treated as identical content.
func ContentHash(kind HashKind, content string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0x00})
	h.Write([]byte(NormalizeContent(content)))
	return hex.EncodeToString(h.Sum(nil))
}
