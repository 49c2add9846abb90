package tui

import (
	"errors"

	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/internal/validators"
)

// humanizeError turns service and validation errors into the short
// messages shown in the notification banner.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailTaken):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Please login to access this page"
	case errors.Is(err, service.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, service.ErrOutOfStock):
		return "This product is out of stock"
	case errors.Is(err, service.ErrInsufficientStock):
		return "Not enough stock available"
	case errors.Is(err, service.ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(err, validators.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, validators.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	}
	return err.Error()
}
