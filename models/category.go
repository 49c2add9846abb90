package models

// Category is a catalog grouping. The Count field is a projection over the
// current product list: it is recomputed on demand and never persisted as
// authoritative data.
type Category struct {
	// ID equals the category name in the seed data.
	ID string `json:"id"`

	// Name is the display name; products reference it by value.
	Name string `json:"name"`

	// Icon is an opaque icon reference for the presentation layer.
	Icon string `json:"icon"`

	// Count is the number of products whose Category equals Name.
	// Derived; see CatalogService.CategoryCounts.
	Count int `json:"count"`
}

// FAQEntry is a static question/answer pair shown on the support view.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
