package service

import (
	"context"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/validators"
)

type Services struct {
	Catalog CatalogService
	Cart    CartService
	Auth    AuthService
	Admin   AdminService
	Orders  OrderService

	state *state.State
}

func NewServices(st *state.State, logger *logger.Logger) *Services {
	validator := validators.NewFormValidator()

	return &Services{
		Catalog: NewCatalogService(st, logger),
		Cart:    NewCartService(st, logger),
		Auth:    NewAuthService(st, validator, logger),
		Admin:   NewAdminService(st, validator, logger),
		Orders:  NewOrderService(st, logger),
		state:   st,
	}
}

// Reset wipes the durable store and every in-memory collection, then
// hydrates again so the seed data comes back. The session is dropped.
func (s *Services) Reset(ctx context.Context) error {
	if err := s.state.Reset(ctx); err != nil {
		return err
	}
	return s.state.Hydrate(ctx)
}
