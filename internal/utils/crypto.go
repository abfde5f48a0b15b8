// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderReference returns a 9-character uppercase base-36 order
// reference, e.g. "K3F9ZL2QA".
func GenerateOrderReference() (string, error) {
	return randomBase36(9)
}

func randomBase36(length int) (string, error) {
	max := big.NewInt(int64(len(referenceAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random reference: %w", err)
		}
		out[i] = referenceAlphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateSecureToken returns a random base-36 token of the given
// length, used for opaque identifiers outside the order path.
func GenerateSecureToken(length int) (string, error) {
	return randomBase36(length)
}
