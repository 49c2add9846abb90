package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/models"
)

// taxRate is applied to the cart subtotal at checkout.
const taxRate = 0.08

// cartService is the concrete implementation of CartService. Every
// mutation holds the state lock for the whole read-modify-persist cycle,
// so stock checks and the write-back are atomic with respect to other
// operations.
//
// Cart lines carry a snapshot of the product taken when the line was
// created. Stock limits are enforced against the live catalog at mutation
// time only: a later stock edit does not shrink existing lines.
type cartService struct {
	state  *state.State
	logger *logger.Logger
}

func NewCartService(st *state.State, logger *logger.Logger) CartService {
	return &cartService{
		state:  st,
		logger: logger,
	}
}

// AddItem puts one more unit of the product into the cart.
//
// Returns:
//   - ErrProductNotFound if the ID is not in the catalog.
//   - ErrOutOfStock if the product's stock is zero.
//   - ErrInsufficientStock if the line already holds the full stock.
func (c *cartService) AddItem(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	c.state.Lock()
	defer c.state.Unlock()

	product, ok := findProduct(c.state.Products, productID)
	if !ok {
		return ErrProductNotFound
	}
	if product.Stock == 0 {
		return ErrOutOfStock
	}

	if i := findLine(c.state.Cart, productID); i >= 0 {
		if c.state.Cart[i].Quantity >= product.Stock {
			log.Debug().Str("func", "*cartService.AddItem").
				Int64("product_id", productID).
				Int("stock", product.Stock).
				Msg("stock ceiling reached")
			return ErrInsufficientStock
		}
		c.state.Cart[i].Quantity++
	} else {
		c.state.Cart = append(c.state.Cart, models.CartLine{Product: product, Quantity: 1})
	}

	if err := c.state.Persist(ctx); err != nil {
		return fmt.Errorf("error persisting cart: %w", err)
	}

	return nil
}

// SetQuantity sets the line quantity directly. A quantity below one removes
// the line; a quantity above the product's stock is rejected and the line
// stays unchanged. Targeting a product with no cart line is a no-op.
func (c *cartService) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	c.state.Lock()
	defer c.state.Unlock()

	i := findLine(c.state.Cart, productID)
	if i < 0 {
		return nil
	}

	if quantity < 1 {
		c.state.Cart = append(c.state.Cart[:i], c.state.Cart[i+1:]...)
		if err := c.state.Persist(ctx); err != nil {
			return fmt.Errorf("error persisting cart: %w", err)
		}
		return nil
	}

	// The line snapshot's stock is the limit when the product has been
	// deleted from the catalog since the line was created.
	stock := c.state.Cart[i].Stock
	if product, ok := findProduct(c.state.Products, productID); ok {
		stock = product.Stock
	}
	if quantity > stock {
		return ErrInsufficientStock
	}

	c.state.Cart[i].Quantity = quantity
	if err := c.state.Persist(ctx); err != nil {
		return fmt.Errorf("error persisting cart: %w", err)
	}

	return nil
}

// RemoveItem deletes the product's line from the cart. Removing an absent
// line is a no-op.
func (c *cartService) RemoveItem(ctx context.Context, productID int64) error {
	c.state.Lock()
	defer c.state.Unlock()

	i := findLine(c.state.Cart, productID)
	if i < 0 {
		return nil
	}

	c.state.Cart = append(c.state.Cart[:i], c.state.Cart[i+1:]...)
	if err := c.state.Persist(ctx); err != nil {
		return fmt.Errorf("error persisting cart: %w", err)
	}

	return nil
}

// Lines returns a copy of the current cart lines.
func (c *cartService) Lines(_ context.Context) []models.CartLine {
	c.state.Lock()
	defer c.state.Unlock()

	lines := make([]models.CartLine, len(c.state.Cart))
	copy(lines, c.state.Cart)
	return lines
}

// ItemCount returns the total number of units across all lines.
func (c *cartService) ItemCount(_ context.Context) int {
	c.state.Lock()
	defer c.state.Unlock()

	n := 0
	for _, line := range c.state.Cart {
		n += line.Quantity
	}
	return n
}

// Totals computes the cost summary from the line price snapshots: subtotal,
// 8% tax and their sum, each rounded to two decimal places.
func (c *cartService) Totals(_ context.Context) models.CartTotals {
	c.state.Lock()
	defer c.state.Unlock()

	return computeTotals(c.state.Cart)
}

func computeTotals(lines []models.CartLine) models.CartTotals {
	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.LineTotal()
	}

	tax := subtotal * taxRate
	return models.CartTotals{
		Subtotal: round2(subtotal),
		Tax:      round2(tax),
		Total:    round2(subtotal + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func findProduct(products []models.Product, productID int64) (models.Product, bool) {
	for _, p := range products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}

func findLine(cart []models.CartLine, productID int64) int {
	for i, line := range cart {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
