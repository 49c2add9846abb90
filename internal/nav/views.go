package nav

// View identifies one screen of the storefront. The string value doubles
// as the location fragment.
type View string

const (
	ViewHome       View = "home"
	ViewProducts   View = "products"
	ViewCategories View = "categories"
	ViewCart       View = "cart"
	ViewCheckout   View = "checkout"
	ViewOrders     View = "orders"
	ViewSupport    View = "support"
	ViewAuth       View = "auth"
	ViewProfile    View = "profile"
	ViewAdmin      View = "admin"
)

var knownViews = map[View]struct{}{
	ViewHome:       {},
	ViewProducts:   {},
	ViewCategories: {},
	ViewCart:       {},
	ViewCheckout:   {},
	ViewOrders:     {},
	ViewSupport:    {},
	ViewAuth:       {},
	ViewProfile:    {},
	ViewAdmin:      {},
}

// ParseView maps a location fragment to a View. The leading "#" is
// optional. Unknown fragments report false.
func ParseView(fragment string) (View, bool) {
	if len(fragment) > 0 && fragment[0] == '#' {
		fragment = fragment[1:]
	}

	v := View(fragment)
	_, ok := knownViews[v]
	return v, ok
}

// Fragment returns the location fragment for the view.
func (v View) Fragment() string {
	return "#" + string(v)
}
