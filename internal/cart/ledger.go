// internal/cart/ledger.go

// Package cart holds the in-memory cart ledger: a mapping from product
// to quantity with the stock ceiling enforced at mutation time.
//
// Stock is checked only when a line is inserted or incremented. A later
// stock decrease (admin catalog edit) is deliberately not applied to
// lines already in the ledger.
package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

var (
	// ErrOutOfStock signals an add against a zero-stock product.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockLimit signals an add that would exceed the available units.
	ErrStockLimit = errors.New("no more units available in stock")
)

// Line is one ledger entry: a product plus a quantity in [1, stock at
// insert time].
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (l *Line) Total() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Ledger is the active cart. Lines keep insertion order so the drawer
// renders stably. The zero value is an empty, usable ledger.
type Ledger struct {
	lines []Line
}

func New(lines ...Line) *Ledger {
	ld := &Ledger{}
	ld.lines = append(ld.lines, lines...)
	return ld
}

// AddOne inserts a new line at quantity 1 or increments an existing one.
// It refuses (without mutating) when the product has no stock or the
// line already sits at the stock ceiling.
func (ld *Ledger) AddOne(p models.Product) error {
	if p.StockCount <= 0 {
		return ErrOutOfStock
	}

	for i := range ld.lines {
		if ld.lines[i].Product.ID == p.ID {
			if ld.lines[i].Quantity >= p.StockCount {
				return ErrStockLimit
			}
			ld.lines[i].Quantity++
			return nil
		}
	}

	ld.lines = append(ld.lines, Line{Product: p, Quantity: 1})
	return nil
}

// RemoveOne decrements the matching line, dropping it entirely at zero.
// Absent lines are a no-op.
func (ld *Ledger) RemoveOne(productID uuid.UUID) {
	for i := range ld.lines {
		if ld.lines[i].Product.ID != productID {
			continue
		}
		if ld.lines[i].Quantity > 1 {
			ld.lines[i].Quantity--
			return
		}
		ld.lines = append(ld.lines[:i], ld.lines[i+1:]...)
		return
	}
}

// Total sums price x quantity over all lines. The delivery fee is not
// included here; checkout adds it.
func (ld *Ledger) Total() float64 {
	var sum float64
	for i := range ld.lines {
		sum += ld.lines[i].Total()
	}
	return sum
}

// ItemCount sums quantities across lines (the cart badge).
func (ld *Ledger) ItemCount() int {
	var n int
	for i := range ld.lines {
		n += ld.lines[i].Quantity
	}
	return n
}

func (ld *Ledger) Len() int {
	return len(ld.lines)
}

func (ld *Ledger) Empty() bool {
	return len(ld.lines) == 0
}

// Lines returns a copy of the ledger entries in insertion order.
func (ld *Ledger) Lines() []Line {
	out := make([]Line, len(ld.lines))
	copy(out, ld.lines)
	return out
}

func (ld *Ledger) Clear() {
	ld.lines = nil
}
