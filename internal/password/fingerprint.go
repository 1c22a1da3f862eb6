package password

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// fingerprintLen is the number of hex characters kept.
const fingerprintLen = 12

// Fingerprint returns a short SHA3-256 digest of pwd, prefixed with "sha3:".
// Reports and logs identify a password by its fingerprint, never by value.
func Fingerprint(pwd string) string {
	sum := sha3.Sum256([]byte(pwd))
	return "sha3:" + hex.EncodeToString(sum[:])[:fingerprintLen]
}
