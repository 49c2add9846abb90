package models

// Product represents a catalog item managed by the admin editor.
type Product struct {
	// ID is the unique identifier of the product, assigned monotonically
	// (max existing ID + 1) on creation.
	ID int64 `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Ref is the human-readable reference code (e.g. "AF-HD900").
	Ref string `json:"ref"`

	// Category is the name of the category this product belongs to.
	// It is a string key into the category list, not a foreign key.
	Category string `json:"category"`

	// Brand is the manufacturer name. May be empty.
	Brand string `json:"brand"`

	// Price is the unit price. Non-negative.
	Price float64 `json:"price"`

	// Stock is the number of units available. Non-negative.
	Stock int `json:"stock"`

	// Featured marks products shown on the home page.
	Featured bool `json:"featured"`

	// Image is a reference to the product picture, opaque to the core.
	Image string `json:"image"`

	// Description is the free-form product description.
	Description string `json:"description"`

	// WarrantyMonths is the warranty period in months. Zero means none.
	WarrantyMonths int `json:"warranty"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}
