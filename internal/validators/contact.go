package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/contact-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of a contact.
	FieldName = "name"

	// FieldEmail targets the email address of a contact.
	FieldEmail = "email"

	// FieldPhone targets the mobile phone number of a contact.
	FieldPhone = "phone"

	// FieldType targets the contact category (personal, work, family, other).
	FieldType = "type"
)

// phonePattern is the accepted mobile number format: exactly ten digits,
// the first of which is 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// allowedContactTypes is the exhaustive set of ContactType values accepted
// by the validator. Any ContactType not present in this slice is invalid.
var allowedContactTypes = []models.ContactType{
	models.Personal,
	models.Work,
	models.Family,
	models.Other,
}

// ContactValidator implements the Validator interface for contact-related
// domain models: Contact and ContactUpdate.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ContactValidator struct {
}

// NewContactValidator constructs a new ContactValidator
// and returns it as the Validator interface.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Contact / *models.Contact
//   - models.ContactUpdate / *models.ContactUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all fields are validated.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)

	case models.ContactUpdate:
		return v.validateContactUpdate(ctx, value)
	case *models.ContactUpdate:
		return v.validateContactUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateContact checks the named fields of a full contact record.
// When no fields are given, name, email, phone, and type are all validated.
func (v *ContactValidator) validateContact(_ context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldType}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if contact.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if contact.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPhone:
			if contact.Phone == "" {
				return ErrEmptyPhone
			}
			if !phonePattern.MatchString(contact.Phone) {
				return fmt.Errorf("%w: %q", ErrInvalidPhone, contact.Phone)
			}
		case FieldType:
			if !isValidContactType(contact.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidType, contact.Type)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// validateContactUpdate checks a partial update: at least one field must be
// present, and every supplied field must satisfy the same rules as at
// creation time.
func (v *ContactValidator) validateContactUpdate(_ context.Context, update models.ContactUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if update.Name != nil && *update.Name == "" {
		return ErrEmptyName
	}

	if update.Email != nil && *update.Email == "" {
		return ErrEmptyEmail
	}

	if update.Phone != nil && !phonePattern.MatchString(*update.Phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, *update.Phone)
	}

	if update.Type != nil && !isValidContactType(*update.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidType, *update.Type)
	}

	return nil
}

// isValidContactType reports whether ct is one of the recognized ContactType
// values defined in allowedContactTypes.
func isValidContactType(ct models.ContactType) bool {
	for _, t := range allowedContactTypes {
		if ct == t {
			return true
		}
	}
	return false
}
