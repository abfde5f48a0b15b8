// internal/catalog/query.go

// Package catalog implements the storefront's filter/sort view over the
// product set. Apply is a pure function of its inputs: it never mutates
// the supplied slice and tolerates an empty result at every stage.
package catalog

import (
	"sort"
	"strings"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortPriceLow   SortOption = "price-low"
	SortPriceHigh  SortOption = "price-high"
	SortPopularity SortOption = "popularity"
	SortRating     SortOption = "rating"
	SortDiscount   SortOption = "discount"
)

type PriceBracket string

const (
	BracketAll      PriceBracket = "all"
	BracketUnder100 PriceBracket = "under-100"
	Bracket100To500 PriceBracket = "100-500"
	BracketAbove500 PriceBracket = "above-500"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

type Query struct {
	Category string
	Search   string
	Bracket  PriceBracket
	Sort     SortOption
}

// Apply filters category -> text -> price bracket, then sorts. Relevance
// preserves the filtered order; all other sorts are stable.
func Apply(products []models.Product, q Query) []models.Product {
	result := make([]models.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if q.Category != "" && q.Category != CategoryAll && p.CategoryID != q.Category {
			continue
		}
		if query != "" && !matchesText(&p, query) {
			continue
		}
		if !inBracket(p.Price, q.Bracket) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortPopularity:
		sort.SliceStable(result, func(i, j int) bool { return result[i].SalesCount > result[j].SalesCount })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortDiscount:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DiscountFraction() > result[j].DiscountFraction()
		})
	}

	return result
}

// matchesText matches the product name or any tag as a case-insensitive
// substring of/around the query.
func matchesText(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func inBracket(price float64, bracket PriceBracket) bool {
	switch bracket {
	case BracketUnder100:
		return price < 100
	case Bracket100To500:
		return price >= 100 && price <= 500
	case BracketAbove500:
		return price > 500
	default:
		return true
	}
}

// MatchIngredient returns the products matching one assistant ingredient
// keyword: the product name contains the ingredient, or the ingredient
// phrase contains one of the product's tags.
func MatchIngredient(products []models.Product, ingredient string) []models.Product {
	ing := strings.ToLower(strings.TrimSpace(ingredient))
	if ing == "" {
		return nil
	}

	var matches []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), ing) {
			matches = append(matches, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(ing, strings.ToLower(tag)) {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}
