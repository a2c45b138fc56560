package domain

import (
	"math"
	"time"
)

// CartItem is a single pending donation line. Identity is positional: items
// are addressed by their index in the cart, not by a synthetic id.
type CartItem struct {
	Title   string    `json:"title"`
	Price   float64   `json:"price"`
	Note    string    `json:"note,omitempty"`
	Custom  bool      `json:"custom,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

// Cart is the ordered list of items pending checkout. Insertion order is
// display order.
type Cart []CartItem

// Total sums the item prices. Non-finite prices count as zero so a single
// bad entry cannot poison the figure shown to the donor.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c {
		total += NormalizePrice(it.Price)
	}
	return total
}

// NormalizePrice coerces a price to a finite non-negative number. Anything
// else collapses to zero.
func NormalizePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}
