package validators

import (
	"context"

	"github.com/MKhiriev/go-shop-front/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldFirstName targets the given-name field of signup and profile forms.
	FieldFirstName = "first_name"

	// FieldLastName targets the family-name field of signup and profile forms.
	FieldLastName = "last_name"

	// FieldEmail targets the email field of signup and profile forms.
	FieldEmail = "email"

	// FieldPassword targets the password length rule of the signup form.
	FieldPassword = "password"

	// FieldPasswordConfirm targets the password/confirmation match rule.
	FieldPasswordConfirm = "password_confirm"

	// FieldProductName targets the display name of the product form.
	FieldProductName = "product_name"

	// FieldProductRef targets the reference code of the product form.
	FieldProductRef = "product_ref"

	// FieldProductCategory targets the category of the product form.
	FieldProductCategory = "product_category"

	// FieldProductPrice enforces a strictly positive unit price.
	FieldProductPrice = "product_price"

	// FieldProductStock enforces a non-negative stock quantity.
	FieldProductStock = "product_stock"

	// FieldProductImage targets the image reference of the product form.
	FieldProductImage = "product_image"

	// FieldProductDescription targets the description of the product form.
	FieldProductDescription = "product_description"
)

// FormValidator implements the Validator interface for the user-facing
// input forms: SignupForm, ProfileForm and ProductForm.
//
// It supports both value and pointer receivers for every form type and
// allows optional field-level scoping via variadic field name arguments.
type FormValidator struct {
}

// NewFormValidator constructs a new FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SignupForm / *models.SignupForm
//   - models.ProfileForm / *models.ProfileForm
//   - models.ProductForm / *models.ProductForm
//
// Returns ErrUnsupportedType if obj does not match any known form.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupForm:
		return v.validateSignupForm(ctx, value, fields...)
	case *models.SignupForm:
		return v.validateSignupForm(ctx, *value, fields...)

	case models.ProfileForm:
		return v.validateProfileForm(ctx, value, fields...)
	case *models.ProfileForm:
		return v.validateProfileForm(ctx, *value, fields...)

	case models.ProductForm:
		return v.validateProductForm(ctx, value, fields...)
	case *models.ProductForm:
		return v.validateProductForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateSignupForm(_ context.Context, form models.SignupForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldPasswordConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if form.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if form.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if form.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if len(form.Password) < 6 {
				return ErrPasswordTooShort
			}
		case FieldPasswordConfirm:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateProfileForm(_ context.Context, form models.ProfileForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if form.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if form.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if form.Email == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateProductForm(_ context.Context, form models.ProductForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldProductName, FieldProductRef, FieldProductCategory,
			FieldProductPrice, FieldProductStock, FieldProductImage, FieldProductDescription,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldProductName:
			if form.Name == "" {
				return ErrEmptyProductName
			}
		case FieldProductRef:
			if form.Ref == "" {
				return ErrEmptyProductRef
			}
		case FieldProductCategory:
			if form.Category == "" {
				return ErrEmptyProductCategory
			}
		case FieldProductPrice:
			if form.Price <= 0 {
				return ErrInvalidProductPrice
			}
		case FieldProductStock:
			if form.Stock < 0 {
				return ErrNegativeProductStock
			}
		case FieldProductImage:
			if form.Image == "" {
				return ErrEmptyProductImage
			}
		case FieldProductDescription:
			if form.Description == "" {
				return ErrEmptyProductDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
