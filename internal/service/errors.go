package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for any failed login attempt. The
	// message is deliberately uniform: it never reveals whether the email
	// exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when signup is attempted with an email that
	// already belongs to an account. Matching is case-sensitive.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrNotAuthenticated is returned by operations that require a
	// signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProductNotFound is returned when an operation targets a product ID
	// absent from the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrOutOfStock is returned when adding a product whose stock is zero.
	ErrOutOfStock = errors.New("this product is out of stock")

	// ErrInsufficientStock is returned when a cart mutation would exceed
	// the product's available stock. The cart line is left unchanged.
	ErrInsufficientStock = errors.New("not enough items available in stock")

	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)
