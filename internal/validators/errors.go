package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPhone       = errors.New("phone is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidType      = errors.New("invalid contact type")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
