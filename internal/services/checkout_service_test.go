// internal/services/checkout_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasroopa42-commits/royal-cart/internal/cart"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

func checkoutCustomer() *models.User {
	user := &models.User{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "Flat 402, B-Block, MG Road, Bengaluru 560001",
	}
	user.ID = uuid.New()
	return user
}

func checkoutProduct(name string, price float64) models.Product {
	p := models.Product{
		Name:       name,
		Price:      price,
		Weight:     "500g",
		ImageURL:   "https://example.com/" + name,
		StockCount: 50,
		SalesCount: 1200,
	}
	p.ID = uuid.New()
	return p
}

func TestAssembleOrderCODTotal(t *testing.T) {
	user := checkoutCustomer()
	bananas := checkoutProduct("Fresh Cavendish Bananas", 45)
	lines := []cart.Line{{Product: bananas, Quantity: 2}}

	order := assembleOrder(user, lines, 5.00, models.PaymentMethodCOD, "", "K3F9ZL2QA")

	assert.Equal(t, 95.0, order.Total, "two units at 45 plus the delivery fee")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.Empty(t, order.UPITransactionID)
	assert.Equal(t, "K3F9ZL2QA", order.Reference)
}

func TestAssembleOrderSnapshotsCustomerAndItems(t *testing.T) {
	user := checkoutCustomer()
	bananas := checkoutProduct("Fresh Cavendish Bananas", 45)
	chips := checkoutProduct("Lays Magic Masala Chips", 20)
	lines := []cart.Line{
		{Product: bananas, Quantity: 2},
		{Product: chips, Quantity: 1},
	}

	order := assembleOrder(user, lines, 5.00, models.PaymentMethodUPI, "TXN-42", "A1B2C3D4E")

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "9876543210", order.CustomerPhone)
	assert.Equal(t, user.Address, order.Address)
	assert.Equal(t, "TXN-42", order.UPITransactionID)

	require.Len(t, order.Items, 2)
	assert.Equal(t, bananas.ID, order.Items[0].ProductID)
	assert.Equal(t, "Fresh Cavendish Bananas", order.Items[0].ProductName)
	assert.Equal(t, 45.0, order.Items[0].UnitPrice)
	assert.Equal(t, "500g", order.Items[0].Weight)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 90.0, order.Items[0].LineTotal())
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, 110.0, order.Total)
}

func TestAssembleOrderLeavesProductsUntouched(t *testing.T) {
	user := checkoutCustomer()
	bananas := checkoutProduct("Fresh Cavendish Bananas", 45)
	lines := []cart.Line{{Product: bananas, Quantity: 3}}

	assembleOrder(user, lines, 5.00, models.PaymentMethodCOD, "", "Z9Y8X7W6V")

	assert.Equal(t, 50, lines[0].Product.StockCount, "settlement does not touch stock")
	assert.Equal(t, int64(1200), lines[0].Product.SalesCount, "settlement does not touch sales")
}
