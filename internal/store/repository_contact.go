package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. It executes all contact CRUD operations directly
// against the "contacts" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (contact_id, user_id, etc.).
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by
// the provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact record. The contact ID is generated
// at the service layer; timestamps come back from the RETURNING clause.
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createContact,
		contact.ContactID, contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Type)

	saved, err := scanContact(row)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.CreateContact").
			Str("contact_id", contact.ContactID).
			Int64("user_id", contact.UserID).
			Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetAllContacts retrieves every stored contact regardless of owner.
//
// Returns an empty slice when no records are found; the service layer
// decides whether an empty result is an error.
func (c *contactRepository) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := c.DB.QueryContext(ctx, getAllContacts)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*contactRepository.GetAllContacts").
			Msg("failed to execute query for getting all contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return collectContacts(rows, log, "*contactRepository.GetAllContacts")
}

// GetContactsByUserID retrieves the contacts owned by the given user.
//
// Returns an empty slice when the user owns no contacts.
func (c *contactRepository) GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := c.DB.QueryContext(ctx, getContactsByUserID, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*contactRepository.GetContactsByUserID").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return collectContacts(rows, log, "*contactRepository.GetContactsByUserID")
}

// GetContactByID retrieves a single contact record by primary key.
//
// Error handling:
//   - sql.ErrNoRows → [ErrContactNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (c *contactRepository) GetContactByID(ctx context.Context, contactID string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, getContactByID, contactID)

	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).
			Str("func", "*contactRepository.GetContactByID").
			Str("contact_id", contactID).
			Msg("failed to scan contact row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// UpdateContact applies a partial update built dynamically from the non-nil
// fields of the given [models.ContactUpdate] and returns the updated record.
//
// The UPDATE always bumps updated_at. No ownership check is performed here:
// any caller who knows the contact ID may mutate it.
//
// Error handling:
//   - No fields to update → [ErrBuildingSQLQuery].
//   - sql.ErrNoRows from RETURNING → [ErrContactNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (c *contactRepository) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UpdateContact").
			Str("contact_id", update.ContactID).
			Msg("failed to build update query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := c.DB.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanContact(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(scanErr).
			Str("func", "*contactRepository.UpdateContact").
			Str("contact_id", update.ContactID).
			Msg("failed to scan updated contact row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return updated, nil
}

// DeleteContact removes a contact and returns the deleted record via a
// RETURNING clause. Deleting an unknown (or already deleted) ID yields
// [ErrContactNotFound], so a repeated delete is a harmless 404.
func (c *contactRepository) DeleteContact(ctx context.Context, contactID string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, deleteContactByID, contactID)

	deleted, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).
			Str("func", "*contactRepository.DeleteContact").
			Str("contact_id", contactID).
			Msg("failed to scan deleted contact row")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}

// buildUpdateContactQuery builds a partial UPDATE from the non-nil fields of
// update. updated_at is always set; the full record is returned via
// RETURNING so the caller gets the canonical post-update state.
func buildUpdateContactQuery(update models.ContactUpdate) (string, []any, error) {
	builder := sq.Update("contacts").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Type != nil {
		builder = builder.Set("type", *update.Type)
	}

	if update.IsEmpty() {
		return "", nil, errors.New("at least one field must be provided for update")
	}

	return builder.
		Where(sq.Eq{"contact_id": update.ContactID}).
		Suffix("RETURNING contact_id, user_id, name, email, phone, type, created_at, updated_at").
		ToSql()
}

// scanContact reads one contact row from a single-row query result.
// The owner column is nullable, so it goes through sql.NullInt64.
func scanContact(row *sql.Row) (models.Contact, error) {
	var contact models.Contact
	var owner sql.NullInt64

	err := row.Scan(
		&contact.ContactID,
		&owner,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Type,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return models.Contact{}, err
	}

	contact.UserID = owner.Int64
	return contact, nil
}

// collectContacts drains a multi-row result set into a slice, wrapping scan
// and iteration failures with the package's low-level sentinels.
func collectContacts(rows *sql.Rows, log *logger.Logger, funcName string) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0, 50)

	for rows.Next() {
		var contact models.Contact
		var owner sql.NullInt64

		scanErr := rows.Scan(
			&contact.ContactID,
			&owner,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Type,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		contact.UserID = owner.Int64
		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, nil
}
