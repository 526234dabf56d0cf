package models

import "time"

// ContactType is the fixed category enumeration for a contact record.
type ContactType string

// Allowed contact categories. A contact created without an explicit type
// defaults to [Personal].
const (
	Personal ContactType = "personal"
	Work     ContactType = "work"
	Family   ContactType = "family"
	Other    ContactType = "other"
)

// Contact represents a single address-book entry owned by a user.
type Contact struct {
	// ContactID is the UUID primary key, generated by the application
	// before the record is persisted.
	ContactID string `json:"contact_id"`

	// UserID references the owning user. It is a weak reference: no
	// foreign-key constraint is enforced at the database level, and
	// unauthenticated reads return contacts regardless of owner.
	UserID int64 `json:"user_id,omitempty"`

	// Name is the display name of the contact.
	Name string `json:"name"`

	// Email is the contact's email address.
	Email string `json:"email"`

	// Phone is a 10-digit mobile number starting with 6-9.
	Phone string `json:"phone"`

	// Type is the contact category. One of the [ContactType] constants.
	Type ContactType `json:"type"`

	// CreatedAt is the timestamp when the contact was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate describes a partial update of a contact record.
// Nil fields are left untouched; non-nil fields overwrite the stored value.
type ContactUpdate struct {
	// ContactID identifies the record to update.
	ContactID string `json:"-"`

	// Name, when non-nil, replaces the stored display name.
	Name *string `json:"name,omitempty"`

	// Email, when non-nil, replaces the stored email address.
	Email *string `json:"email,omitempty"`

	// Phone, when non-nil, replaces the stored phone number.
	// Subject to the same mobile-number pattern as at creation.
	Phone *string `json:"phone,omitempty"`

	// Type, when non-nil, replaces the stored category.
	// Must be one of the [ContactType] constants.
	Type *ContactType `json:"type,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ContactUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Type == nil
}
