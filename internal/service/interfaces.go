package service

import (
	"context"

	"github.com/MKhiriev/go-shop-front/models"
)

// SortKey selects the catalog sort order.
type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
	SortFeatured  SortKey = "featured"
)

// FilterCriteria narrows the catalog listing. The zero value matches the
// whole catalog.
type FilterCriteria struct {
	// Category filters by exact category name. Empty or "all" matches
	// every category.
	Category string

	// MinPrice is the inclusive lower price bound.
	MinPrice float64

	// MaxPrice is the inclusive upper price bound. Zero means unbounded.
	MaxPrice float64

	// InStockOnly keeps only products with stock above zero.
	InStockOnly bool
}

// CategoryAll is the wildcard accepted by FilterCriteria.Category.
const CategoryAll = "all"

// CatalogService provides read access to the product catalog. All results
// are copies; mutating them does not affect the stored catalog.
type CatalogService interface {
	Filter(ctx context.Context, criteria FilterCriteria) []models.Product
	Sort(ctx context.Context, key SortKey) []models.Product
	Search(ctx context.Context, term string) []models.Product
	Featured(ctx context.Context) []models.Product
	Get(ctx context.Context, productID int64) (models.Product, error)
	CategoryCounts(ctx context.Context) []models.Category
	FAQ(ctx context.Context) []models.FAQEntry
}

// CartService mutates the shopping cart. Stock limits are enforced at
// mutation time against the current catalog.
type CartService interface {
	AddItem(ctx context.Context, productID int64) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	RemoveItem(ctx context.Context, productID int64) error
	Lines(ctx context.Context) []models.CartLine
	ItemCount(ctx context.Context) int
	Totals(ctx context.Context) models.CartTotals
}

// AuthService manages accounts and the current session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, form models.SignupForm) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (models.User, bool)
	IsLoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	UpdateProfile(ctx context.Context, form models.ProfileForm) (models.User, error)
}

// AdminService is the product catalog editor. Callers are expected to gate
// access with AuthService.IsAdmin.
type AdminService interface {
	CreateProduct(ctx context.Context, form models.ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, productID int64, form models.ProductForm) (models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	Products(ctx context.Context) []models.Product
}

// OrderService turns the cart into placed orders.
type OrderService interface {
	PlaceOrder(ctx context.Context) (models.Order, error)
	OrdersForCurrentUser(ctx context.Context) []models.Order
}
