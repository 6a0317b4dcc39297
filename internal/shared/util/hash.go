package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns a filesystem-safe identifier for a user ID, used to
// partition uploaded resumes per owner in object storage. 32 hex chars keep
// keys short while staying collision-safe at this scale.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:16])
}
