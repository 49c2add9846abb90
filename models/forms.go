package models

// SignupForm carries the raw signup input before validation. ConfirmPassword
// is checked against Password and never stored.
type SignupForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileForm carries edits to the signed-in user's identity attributes.
type ProfileForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ProductForm carries the raw product editor input before validation.
// Brand, warranty and featured are not part of the form: creation fills
// them with defaults, updates keep the stored values.
type ProductForm struct {
	Name        string  `json:"name"`
	Ref         string  `json:"ref"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
