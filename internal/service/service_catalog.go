package service

import (
	"context"
	"sort"
	"strings"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/models"
)

// featuredLimit caps the home page featured strip.
const featuredLimit = 4

// catalogService is the concrete implementation of CatalogService. All
// methods take the state lock for the duration of the read and return
// fresh slices, so callers can hold results across later mutations.
type catalogService struct {
	state  *state.State
	logger *logger.Logger
}

func NewCatalogService(st *state.State, logger *logger.Logger) CatalogService {
	return &catalogService{
		state:  st,
		logger: logger,
	}
}

// Filter returns the products matching every criterion. An unknown
// category or an empty catalog yields an empty slice, never an error.
func (c *catalogService) Filter(_ context.Context, criteria FilterCriteria) []models.Product {
	c.state.Lock()
	defer c.state.Unlock()

	matched := make([]models.Product, 0, len(c.state.Products))
	for _, p := range c.state.Products {
		if p.Price < criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice > 0 && p.Price > criteria.MaxPrice {
			continue
		}
		if criteria.Category != "" && criteria.Category != CategoryAll && p.Category != criteria.Category {
			continue
		}
		if criteria.InStockOnly && !p.InStock() {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

// Sort returns the full catalog in the requested order. Sorting is stable,
// so SortFeatured keeps the relative catalog order within the featured and
// non-featured groups. An unknown key returns the catalog order unchanged.
func (c *catalogService) Sort(_ context.Context, key SortKey) []models.Product {
	c.state.Lock()
	sorted := make([]models.Product, len(c.state.Products))
	copy(sorted, c.state.Products)
	c.state.Unlock()

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	case SortFeatured:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Featured && !sorted[j].Featured })
	}

	return sorted
}

// Search performs a case-insensitive substring match over name, reference,
// category, brand and description. An empty term returns the full catalog.
func (c *catalogService) Search(_ context.Context, term string) []models.Product {
	c.state.Lock()
	defer c.state.Unlock()

	term = strings.ToLower(term)

	matched := make([]models.Product, 0, len(c.state.Products))
	for _, p := range c.state.Products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Ref), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			(p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), term)) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
		}
	}

	return matched
}

// Featured returns up to four featured products for the home page.
func (c *catalogService) Featured(_ context.Context) []models.Product {
	c.state.Lock()
	defer c.state.Unlock()

	featured := make([]models.Product, 0, featuredLimit)
	for _, p := range c.state.Products {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == featuredLimit {
			break
		}
	}

	return featured
}

// Get returns the product with the given ID or ErrProductNotFound.
func (c *catalogService) Get(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	c.state.Lock()
	defer c.state.Unlock()

	for _, p := range c.state.Products {
		if p.ID == productID {
			return p, nil
		}
	}

	log.Debug().Str("func", "*catalogService.Get").Int64("product_id", productID).Msg("product not found")
	return models.Product{}, ErrProductNotFound
}

// CategoryCounts recomputes the product count of every category from the
// current catalog. Counts are never read from persisted data.
func (c *catalogService) CategoryCounts(_ context.Context) []models.Category {
	c.state.Lock()
	defer c.state.Unlock()

	counts := make(map[string]int, len(c.state.Categories))
	for _, p := range c.state.Products {
		counts[p.Category]++
	}

	categories := make([]models.Category, len(c.state.Categories))
	copy(categories, c.state.Categories)
	for i := range categories {
		categories[i].Count = counts[categories[i].Name]
	}

	return categories
}

// FAQ returns the static support entries.
func (c *catalogService) FAQ(_ context.Context) []models.FAQEntry {
	c.state.Lock()
	defer c.state.Unlock()

	faq := make([]models.FAQEntry, len(c.state.FAQ))
	copy(faq, c.state.FAQ)
	return faq
}
