package models

// CartLine is one product entry in the cart. The embedded Product is a
// snapshot taken when the line was created: a later admin price edit does
// not retroactively change the line's price. The cart holds at most one
// line per product ID.
type CartLine struct {
	Product

	// Quantity is the number of units in the cart.
	// Invariant: 1 <= Quantity <= stock at the time of the last mutation.
	Quantity int `json:"quantity"`
}

// LineTotal returns the snapshot price multiplied by the quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartTotals is the computed cost summary of a cart.
// All amounts are rounded to two decimal places.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
