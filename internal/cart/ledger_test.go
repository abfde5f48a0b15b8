// internal/cart/ledger_test.go
package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

func testProduct(name string, price float64, stock int) models.Product {
	p := models.Product{Name: name, Price: price, StockCount: stock}
	p.ID = uuid.New()
	return p
}

func TestAddOneNewAndIncrement(t *testing.T) {
	ld := New()
	bananas := testProduct("Bananas", 45, 50)

	require.NoError(t, ld.AddOne(bananas))
	require.NoError(t, ld.AddOne(bananas))

	lines := ld.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, ld.ItemCount())
	assert.Equal(t, 90.0, ld.Total())
}

func TestAddOneOutOfStock(t *testing.T) {
	ld := New()
	milk := testProduct("Milk", 27, 0)

	err := ld.AddOne(milk)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, ld.Empty())
}

func TestAddOneStockCeiling(t *testing.T) {
	ld := New()
	chips := testProduct("Chips", 20, 2)

	require.NoError(t, ld.AddOne(chips))
	require.NoError(t, ld.AddOne(chips))

	err := ld.AddOne(chips)
	assert.ErrorIs(t, err, ErrStockLimit)
	assert.Equal(t, 2, ld.ItemCount(), "failed add must not mutate")
}

func TestRemoveOneDecrementAndDrop(t *testing.T) {
	ld := New()
	onions := testProduct("Onions", 35, 10)

	require.NoError(t, ld.AddOne(onions))
	require.NoError(t, ld.AddOne(onions))

	ld.RemoveOne(onions.ID)
	assert.Equal(t, 1, ld.ItemCount())

	ld.RemoveOne(onions.ID)
	assert.True(t, ld.Empty(), "quantity zero drops the line")
}

func TestRemoveOneAbsentIsNoop(t *testing.T) {
	ld := New()
	bananas := testProduct("Bananas", 45, 50)
	require.NoError(t, ld.AddOne(bananas))

	ld.RemoveOne(uuid.New())
	assert.Equal(t, 1, ld.ItemCount())
}

func TestInsertionOrderStable(t *testing.T) {
	ld := New()
	first := testProduct("First", 10, 5)
	second := testProduct("Second", 20, 5)

	require.NoError(t, ld.AddOne(first))
	require.NoError(t, ld.AddOne(second))
	require.NoError(t, ld.AddOne(first))

	lines := ld.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "First", lines[0].Product.Name)
	assert.Equal(t, "Second", lines[1].Product.Name)
}

func TestTotalsAcrossLines(t *testing.T) {
	ld := New()
	bananas := testProduct("Bananas", 45, 50)
	chips := testProduct("Chips", 20, 100)

	require.NoError(t, ld.AddOne(bananas))
	require.NoError(t, ld.AddOne(bananas))
	require.NoError(t, ld.AddOne(chips))

	assert.Equal(t, 110.0, ld.Total())
	assert.Equal(t, 3, ld.ItemCount())
	assert.Equal(t, 2, ld.Len())
}

func TestLinesReturnsCopy(t *testing.T) {
	ld := New()
	bananas := testProduct("Bananas", 45, 50)
	require.NoError(t, ld.AddOne(bananas))

	lines := ld.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, ld.ItemCount())
}

func TestClear(t *testing.T) {
	ld := New()
	require.NoError(t, ld.AddOne(testProduct("Bananas", 45, 50)))

	ld.Clear()
	assert.True(t, ld.Empty())
	assert.Equal(t, 0.0, ld.Total())
}
