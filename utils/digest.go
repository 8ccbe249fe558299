package utils

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the hex-encoded BLAKE3-256 digest of data. The CLI records
// it next to the server-assigned hash so a journal entry can be verified
// against the local file later.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
