package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/store"
	"github.com/MKhiriev/contact-keeper/internal/utils"
	"github.com/MKhiriev/contact-keeper/internal/validators"
	"github.com/MKhiriev/contact-keeper/models"
)

// contactService is the concrete implementation of ContactService.
// It validates incoming records, assigns identifiers, and delegates
// persistence to a ContactRepository.
type contactService struct {
	contactRepository store.ContactRepository

	validator     validators.Validator
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validators.NewContactValidator(),
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateContact validates and persists a new contact record.
//
// An empty Type defaults to models.Personal before validation, so callers may
// omit the category entirely. The contact ID is always server-assigned; any
// ID supplied by the caller is discarded.
//
// Returns the persisted contact or:
//   - ErrInvalidDataProvided (wrapping the validator error) on a rule violation.
//   - A wrapped storage error if persistence fails.
func (c *contactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.Type == "" {
		contact.Type = models.Personal
	}

	if err := c.validator.Validate(ctx, contact); err != nil {
		log.Error().Err(err).Str("name", contact.Name).Msg("contact validation failed")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	contact.ContactID = c.uuidGenerator.Generate()

	savedContact, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("contact_id", contact.ContactID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return savedContact, nil
}

// GetAllContacts returns every stored contact regardless of owner.
func (c *contactService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return c.contactRepository.GetAllContacts(ctx)
}

// GetContactsByUserID returns the contacts owned by the given user.
func (c *contactService) GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	return c.contactRepository.GetContactsByUserID(ctx, userID)
}

// GetContactByID returns a single contact by its identifier. A miss
// surfaces as store.ErrContactNotFound.
func (c *contactService) GetContactByID(ctx context.Context, contactID string) (models.Contact, error) {
	return c.contactRepository.GetContactByID(ctx, contactID)
}

// UpdateContact validates and applies a partial update.
//
// Returns the updated contact or:
//   - ErrInvalidDataProvided (wrapping the validator error) if no fields are
//     supplied or a supplied field violates a rule.
//   - store.ErrContactNotFound (wrapped) if the contact does not exist.
func (c *contactService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Str("contact_id", update.ContactID).Msg("contact update validation failed")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedContact, err := c.contactRepository.UpdateContact(ctx, update)
	if err != nil {
		log.Err(err).Str("contact_id", update.ContactID).Msg("contact update ended with error")
		return models.Contact{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return updatedContact, nil
}

// DeleteContact removes a contact and returns the deleted record.
// Deleting an unknown ID surfaces as store.ErrContactNotFound.
func (c *contactService) DeleteContact(ctx context.Context, contactID string) (models.Contact, error) {
	deletedContact, err := c.contactRepository.DeleteContact(ctx, contactID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("contact_id", contactID).Msg("contact deletion ended with error")
		return models.Contact{}, fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return deletedContact, nil
}
