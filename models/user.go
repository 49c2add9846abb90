package models

// User represents a shopper account. It contains identity attributes,
// the login credential, and the user's saved delivery addresses.
//
// Password is stored and compared in plaintext to stay byte-compatible with
// the data the original storefront wrote. This is a known security defect:
// a real deployment must replace it with a KDF-derived hash. Do not expose
// this field outside the persistence and auth layers.
type User struct {
	// ID is the unique identifier of the user, assigned monotonically
	// (max existing ID + 1) at signup or seed time.
	ID int64 `json:"id"`

	// Email is the unique login key. Uniqueness is case-sensitive,
	// matching the stored value exactly.
	Email string `json:"email"`

	// Password is the plaintext login credential. See the type comment.
	Password string `json:"password"`

	// FirstName is the user's given name, shown in the UI.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone"`

	// Joined is the account creation date in YYYY-MM-DD form.
	Joined string `json:"joined"`

	// IsAdmin grants access to the admin catalog editor.
	IsAdmin bool `json:"isAdmin"`

	// Addresses is the user's saved delivery addresses.
	// Never nil after hydration; empty slice means none saved.
	Addresses []Address `json:"addresses"`
}

// FullName returns the display name composed of first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Address is a single saved delivery address owned by one user.
type Address struct {
	// Label is the user-facing name of the address ("Home", "Work").
	Label string `json:"label"`

	// Street is the street line of the address.
	Street string `json:"street"`

	// City is the city name.
	City string `json:"city"`

	// State is the state or region code.
	State string `json:"state"`

	// Zip is the postal code.
	Zip string `json:"zip"`

	// Phone is the contact phone for deliveries to this address.
	Phone string `json:"phone"`

	// IsDefault marks the address preselected at checkout.
	IsDefault bool `json:"isDefault"`
}
