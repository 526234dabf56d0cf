package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/contact-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the lowercase-normalised email.
	// A miss yields [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by primary key.
	// A miss yields [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ContactRepository is the persistence contract for contact records.
type ContactRepository interface {
	// CreateContact persists a new contact and returns the record with
	// server-assigned timestamps populated.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// GetAllContacts returns every stored contact regardless of owner.
	GetAllContacts(ctx context.Context) ([]models.Contact, error)

	// GetContactsByUserID returns the contacts owned by the given user.
	GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error)

	// GetContactByID returns a single contact by primary key.
	// A miss yields [ErrContactNotFound].
	GetContactByID(ctx context.Context, contactID string) (models.Contact, error)

	// UpdateContact applies a partial update and returns the updated record.
	// A miss yields [ErrContactNotFound]; an empty update yields
	// [ErrBuildingSQLQuery].
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)

	// DeleteContact removes a contact and returns the deleted record.
	// A miss yields [ErrContactNotFound], which makes a repeated delete
	// indistinguishable from deleting an unknown ID.
	DeleteContact(ctx context.Context, contactID string) (models.Contact, error)
}
