package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/validators"
	"github.com/MKhiriev/go-shop-front/models"
)

// Defaults applied to products created through the editor. The form does
// not expose these fields.
const (
	defaultBrand          = "Yiopatre"
	defaultWarrantyMonths = 12
)

// adminService is the concrete implementation of AdminService. It edits
// the catalog in place and persists after every mutation. Access control
// is the caller's responsibility via AuthService.IsAdmin.
type adminService struct {
	state     *state.State
	validator validators.Validator
	logger    *logger.Logger
}

func NewAdminService(st *state.State, validator validators.Validator, logger *logger.Logger) AdminService {
	return &adminService{
		state:     st,
		validator: validator,
		logger:    logger,
	}
}

// CreateProduct validates the form and appends a new product with
// id = max existing id + 1, the default brand, a 12-month warranty and
// featured unset.
func (a *adminService) CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*adminService.CreateProduct").Msg("product form rejected")
		return models.Product{}, err
	}

	a.state.Lock()
	defer a.state.Unlock()

	product := models.Product{
		ID:             nextProductID(a.state.Products),
		Name:           form.Name,
		Ref:            form.Ref,
		Category:       form.Category,
		Brand:          defaultBrand,
		Price:          form.Price,
		Stock:          form.Stock,
		Featured:       false,
		Image:          form.Image,
		Description:    form.Description,
		WarrantyMonths: defaultWarrantyMonths,
	}

	a.state.Products = append(a.state.Products, product)

	if err := a.state.Persist(ctx); err != nil {
		return models.Product{}, fmt.Errorf("error persisting product: %w", err)
	}

	log.Info().Str("func", "*adminService.CreateProduct").
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")
	return product, nil
}

// UpdateProduct validates the form and overwrites the form-backed fields of
// an existing product. Brand, warranty and the featured flag keep their
// stored values.
func (a *adminService) UpdateProduct(ctx context.Context, productID int64, form models.ProductForm) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.Product{}, err
	}

	a.state.Lock()
	defer a.state.Unlock()

	for i := range a.state.Products {
		if a.state.Products[i].ID != productID {
			continue
		}

		a.state.Products[i].Name = form.Name
		a.state.Products[i].Ref = form.Ref
		a.state.Products[i].Category = form.Category
		a.state.Products[i].Price = form.Price
		a.state.Products[i].Stock = form.Stock
		a.state.Products[i].Image = form.Image
		a.state.Products[i].Description = form.Description

		if err := a.state.Persist(ctx); err != nil {
			return models.Product{}, fmt.Errorf("error persisting product: %w", err)
		}

		log.Info().Str("func", "*adminService.UpdateProduct").Int64("product_id", productID).Msg("product updated")
		return a.state.Products[i], nil
	}

	return models.Product{}, ErrProductNotFound
}

// DeleteProduct removes the product from the catalog. Deleting an unknown
// ID is a no-op, mirroring filter-based deletion. Existing cart lines keep
// their snapshot.
func (a *adminService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	a.state.Lock()
	defer a.state.Unlock()

	kept := a.state.Products[:0]
	removed := false
	for _, p := range a.state.Products {
		if p.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	a.state.Products = kept

	if !removed {
		return nil
	}

	if err := a.state.Persist(ctx); err != nil {
		return fmt.Errorf("error persisting catalog: %w", err)
	}

	log.Info().Str("func", "*adminService.DeleteProduct").Int64("product_id", productID).Msg("product deleted")
	return nil
}

// Products returns a copy of the full catalog for the editor list.
func (a *adminService) Products(_ context.Context) []models.Product {
	a.state.Lock()
	defer a.state.Unlock()

	products := make([]models.Product, len(a.state.Products))
	copy(products, a.state.Products)
	return products
}

func nextProductID(products []models.Product) int64 {
	var maxID int64
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
