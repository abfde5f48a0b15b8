// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginalPriceFor(t *testing.T) {
	assert.Nil(t, originalPriceFor(100, 0))
	assert.Nil(t, originalPriceFor(100, -5))

	halfOff := originalPriceFor(50, 50)
	require.NotNil(t, halfOff)
	assert.InDelta(t, 100, *halfOff, 1e-9)

	tenOff := originalPriceFor(90, 10)
	require.NotNil(t, tenOff)
	assert.InDelta(t, 100, *tenOff, 1e-9)
}
