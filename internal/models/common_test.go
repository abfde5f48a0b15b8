// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusProgression(t *testing.T) {
	next, ok := OrderStatusPending.Next()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusAccepted, next)

	next, ok = OrderStatusAccepted.Next()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusOutForDelivery, next)

	next, ok = OrderStatusOutForDelivery.Next()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusDelivered, next)
}

func TestOrderStatusDeliveredIsTerminal(t *testing.T) {
	next, ok := OrderStatusDelivered.Next()
	assert.False(t, ok)
	assert.Equal(t, OrderStatusDelivered, next)
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodUPI.Valid())
	assert.True(t, PaymentMethodCOD.Valid())
	assert.False(t, PaymentMethod("CARD").Valid())
}
