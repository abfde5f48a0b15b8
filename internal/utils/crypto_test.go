// internal/utils/crypto_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := GenerateOrderReference()
		require.NoError(t, err)
		assert.Len(t, ref, 9)
		assert.Regexp(t, `^[0-9A-Z]{9}$`, ref)
		assert.False(t, seen[ref], "references must not repeat")
		seen[ref] = true
	}
}
