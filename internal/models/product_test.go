// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountFraction(t *testing.T) {
	orig := func(v float64) *float64 { return &v }

	half := Product{Price: 50, OriginalPrice: orig(100)}
	assert.InDelta(t, 0.5, half.DiscountFraction(), 1e-9)

	quarter := Product{Price: 45, OriginalPrice: orig(60)}
	assert.InDelta(t, 0.25, quarter.DiscountFraction(), 1e-9)

	none := Product{Price: 30}
	assert.Zero(t, none.DiscountFraction())

	zeroOrig := Product{Price: 30, OriginalPrice: orig(0)}
	assert.Zero(t, zeroOrig.DiscountFraction())
}

func TestInStock(t *testing.T) {
	assert.True(t, (&Product{StockCount: 1}).InStock())
	assert.False(t, (&Product{StockCount: 0}).InStock())
}

func TestUserHasDeliveryDetails(t *testing.T) {
	assert.False(t, (&User{}).HasDeliveryDetails())
	assert.False(t, (&User{Address: DefaultAddressPlaceholder}).HasDeliveryDetails())
	assert.True(t, (&User{Address: "42 MG Road, Bengaluru 560001"}).HasDeliveryDetails())
}
