package state

// Storage keys under which domain collections are persisted. Categories and
// the FAQ list are projections over seed data and are never written.
const (
	KeyUsers    = "users"
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeySession  = "current-session-user"
)
