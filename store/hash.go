package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex encoded sha256 digest of the supplied content.
// Hashes are how the store recognizes the active config: the kubeconfig the
// kubernetes client reads from carries no name, so content identity is the
// only link back to a store entry
func Sum(content []byte) string {
	digest := sha256.Sum256(content)
	return hex.EncodeToString(digest[:])
}
