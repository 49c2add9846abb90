package models

import "time"

// Order is a placed order: a frozen copy of the cart at checkout time
// together with the computed totals.
type Order struct {
	// ID is the unique identifier of the order, assigned monotonically.
	ID int64 `json:"id"`

	// Ref is the externally visible order reference (a UUID string).
	Ref string `json:"ref"`

	// UserID is the account that placed the order.
	UserID int64 `json:"userId"`

	// Lines are the cart lines frozen at checkout.
	Lines []CartLine `json:"lines"`

	// Totals are the amounts charged, frozen at checkout.
	Totals CartTotals `json:"totals"`

	// PlacedAt is the checkout timestamp.
	PlacedAt time.Time `json:"placedAt"`
}

// ItemCount returns the total number of units across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
