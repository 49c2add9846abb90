package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrEmptyProductName        = errors.New("product name is required")
	ErrEmptyProductRef         = errors.New("product reference is required")
	ErrEmptyProductCategory    = errors.New("product category is required")
	ErrInvalidProductPrice     = errors.New("price must be greater than 0")
	ErrNegativeProductStock    = errors.New("quantity cannot be negative")
	ErrEmptyProductImage       = errors.New("product image is required")
	ErrEmptyProductDescription = errors.New("product description is required")
)
