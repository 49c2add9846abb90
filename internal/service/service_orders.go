package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/models"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	state  *state.State
	logger *logger.Logger

	// newRef produces order references. Swappable in tests.
	newRef func() string
}

func NewOrderService(st *state.State, logger *logger.Logger) OrderService {
	return &orderService{
		state:  st,
		logger: logger,
		newRef: newOrderRef,
	}
}

// newOrderRef returns a time-ordered UUID, falling back to a random one.
func newOrderRef() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// PlaceOrder freezes the cart into an order for the signed-in user,
// decrements the stock of every ordered product and clears the cart.
//
// Returns ErrNotAuthenticated for anonymous sessions and ErrEmptyCart when
// there is nothing to order.
func (o *orderService) PlaceOrder(ctx context.Context) (models.Order, error) {
	log := logger.FromContext(ctx)

	o.state.Lock()
	defer o.state.Unlock()

	if o.state.CurrentUser == nil {
		return models.Order{}, ErrNotAuthenticated
	}
	if len(o.state.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	lines := make([]models.CartLine, len(o.state.Cart))
	copy(lines, o.state.Cart)

	order := models.Order{
		ID:       nextOrderID(o.state.Orders),
		Ref:      o.newRef(),
		UserID:   o.state.CurrentUser.ID,
		Lines:    lines,
		Totals:   computeTotals(lines),
		PlacedAt: time.Now(),
	}

	for _, line := range lines {
		for i := range o.state.Products {
			if o.state.Products[i].ID != line.ID {
				continue
			}
			o.state.Products[i].Stock -= line.Quantity
			if o.state.Products[i].Stock < 0 {
				o.state.Products[i].Stock = 0
			}
			break
		}
	}

	o.state.Orders = append(o.state.Orders, order)
	o.state.Cart = nil

	if err := o.state.Persist(ctx); err != nil {
		return models.Order{}, fmt.Errorf("error persisting order: %w", err)
	}

	log.Info().Str("func", "*orderService.PlaceOrder").
		Int64("order_id", order.ID).
		Str("ref", order.Ref).
		Float64("total", order.Totals.Total).
		Msg("order placed")
	return order, nil
}

// OrdersForCurrentUser returns the signed-in user's order history, empty
// for anonymous sessions.
func (o *orderService) OrdersForCurrentUser(_ context.Context) []models.Order {
	o.state.Lock()
	defer o.state.Unlock()

	if o.state.CurrentUser == nil {
		return nil
	}

	orders := make([]models.Order, 0, len(o.state.Orders))
	for _, order := range o.state.Orders {
		if order.UserID == o.state.CurrentUser.ID {
			orders = append(orders, order)
		}
	}
	return orders
}

func nextOrderID(orders []models.Order) int64 {
	var maxID int64
	for _, order := range orders {
		if order.ID > maxID {
			maxID = order.ID
		}
	}
	return maxID + 1
}
