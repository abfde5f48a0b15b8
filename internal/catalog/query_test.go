// internal/catalog/query_test.go
package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

func product(name string, price float64, original *float64, category string, tags []string, rating float64, sales int64) models.Product {
	p := models.Product{
		Name:          name,
		Price:         price,
		OriginalPrice: original,
		CategoryID:    category,
		Tags:          pq.StringArray(tags),
		Rating:        rating,
		SalesCount:    sales,
	}
	p.ID = uuid.New()
	return p
}

func orig(v float64) *float64 { return &v }

func fixture() []models.Product {
	return []models.Product{
		product("Fresh Cavendish Bananas", 45, orig(60), "fruits-veg", []string{"banana", "fruit", "fresh"}, 4.8, 1200),
		product("Amul Taaza Toned Milk", 27, orig(28), "dairy", []string{"milk", "dairy", "amul"}, 4.9, 5000),
		product("Lays Magic Masala Chips", 20, nil, "snacks", []string{"chips", "snacks", "lays", "potato"}, 4.5, 3200),
		product("Basmati Rice Premium", 550, orig(600), "staples", []string{"rice", "staple"}, 4.6, 800),
		product("Red Onions", 35, orig(70), "fruits-veg", []string{"onion", "vegetable", "staple"}, 4.7, 2500),
		product("Saffron Threads", 250, nil, "spices", []string{"saffron", "spice"}, 4.9, 150),
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestApplyNoFilters(t *testing.T) {
	products := fixture()
	result := Apply(products, Query{})

	assert.Len(t, result, len(products))
	assert.Equal(t, names(products), names(result), "relevance keeps the incoming order")
}

func TestApplyCategoryFilter(t *testing.T) {
	result := Apply(fixture(), Query{Category: "fruits-veg"})
	assert.Equal(t, []string{"Fresh Cavendish Bananas", "Red Onions"}, names(result))

	all := Apply(fixture(), Query{Category: CategoryAll})
	assert.Len(t, all, 6)
}

func TestApplySearchMatchesNameOrTag(t *testing.T) {
	byName := Apply(fixture(), Query{Search: "masala"})
	assert.Equal(t, []string{"Lays Magic Masala Chips"}, names(byName))

	byTag := Apply(fixture(), Query{Search: "vegetable"})
	assert.Equal(t, []string{"Red Onions"}, names(byTag))

	caseless := Apply(fixture(), Query{Search: "  BANANA "})
	assert.Equal(t, []string{"Fresh Cavendish Bananas"}, names(caseless))

	none := Apply(fixture(), Query{Search: "truffle"})
	assert.Empty(t, none)
}

func TestApplyPriceBrackets(t *testing.T) {
	under := Apply(fixture(), Query{Bracket: BracketUnder100})
	for _, p := range under {
		assert.Less(t, p.Price, 100.0)
	}
	assert.Len(t, under, 4)

	mid := Apply(fixture(), Query{Bracket: Bracket100To500})
	assert.Equal(t, []string{"Saffron Threads"}, names(mid))

	above := Apply(fixture(), Query{Bracket: BracketAbove500})
	assert.Equal(t, []string{"Basmati Rice Premium"}, names(above))
}

func TestApplyBracketBoundaries(t *testing.T) {
	products := []models.Product{
		product("At 100", 100, nil, "staples", nil, 0, 0),
		product("At 500", 500, nil, "staples", nil, 0, 0),
	}

	assert.Empty(t, Apply(products, Query{Bracket: BracketUnder100}))
	assert.Len(t, Apply(products, Query{Bracket: Bracket100To500}), 2)
	assert.Empty(t, Apply(products, Query{Bracket: BracketAbove500}))
}

func TestApplySorts(t *testing.T) {
	low := Apply(fixture(), Query{Sort: SortPriceLow})
	assert.Equal(t, "Lays Magic Masala Chips", low[0].Name)
	assert.Equal(t, "Basmati Rice Premium", low[len(low)-1].Name)

	high := Apply(fixture(), Query{Sort: SortPriceHigh})
	assert.Equal(t, "Basmati Rice Premium", high[0].Name)

	popular := Apply(fixture(), Query{Sort: SortPopularity})
	assert.Equal(t, "Amul Taaza Toned Milk", popular[0].Name)

	rated := Apply(fixture(), Query{Sort: SortRating})
	assert.Equal(t, 4.9, rated[0].Rating)
}

func TestApplyDiscountSortUsesFraction(t *testing.T) {
	products := []models.Product{
		product("Ten Percent Off", 90, orig(100), "staples", nil, 0, 0),
		product("Half Off", 50, orig(100), "staples", nil, 0, 0),
		product("No Discount", 30, nil, "staples", nil, 0, 0),
	}

	result := Apply(products, Query{Sort: SortDiscount})
	assert.Equal(t, []string{"Half Off", "Ten Percent Off", "No Discount"}, names(result))
}

func TestApplyFilterThenSort(t *testing.T) {
	result := Apply(fixture(), Query{Category: "fruits-veg", Sort: SortPriceLow})
	assert.Equal(t, []string{"Red Onions", "Fresh Cavendish Bananas"}, names(result))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixture()
	before := names(products)

	Apply(products, Query{Sort: SortPriceHigh})
	assert.Equal(t, before, names(products))
}

func TestMatchIngredient(t *testing.T) {
	products := fixture()

	byName := MatchIngredient(products, "onion")
	assert.Equal(t, []string{"Red Onions"}, names(byName))

	// The ingredient phrase carries a product tag.
	byTag := MatchIngredient(products, "fresh milk")
	assert.Contains(t, names(byTag), "Amul Taaza Toned Milk")

	assert.Empty(t, MatchIngredient(products, "   "))
	assert.Empty(t, MatchIngredient(products, "quinoa"))
}
