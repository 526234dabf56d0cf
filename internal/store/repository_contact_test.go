package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/models"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func contactColumns() []string {
	return []string{"contact_id", "user_id", "name", "email", "phone", "type", "created_at", "updated_at"}
}

func TestCreateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{
		ContactID: "0198f2c4-0000-7000-8000-000000000001",
		UserID:    7,
		Name:      "B",
		Email:     "b@x.com",
		Phone:     "9876543210",
		Type:      models.Personal,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns()).
		AddRow(contact.ContactID, contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Type, now, now)

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(contact.ContactID, contact.UserID, contact.Name, contact.Email, contact.Phone, contact.Type).
		WillReturnRows(rows)

	saved, err := repo.CreateContact(ctx, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ContactID != contact.ContactID {
		t.Errorf("expected contact ID %s, got %s", contact.ContactID, saved.ContactID)
	}
	if saved.UserID != 7 {
		t.Errorf("expected owner 7, got %d", saved.UserID)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated from RETURNING")
	}
}

func TestCreateContact_DBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contacts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateContact(context.Background(), models.Contact{ContactID: "id"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllContacts_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns()).
		AddRow("id-1", 7, "A", "a@x.com", "9876543210", "personal", now, now).
		AddRow("id-2", nil, "B", "b@x.com", "8876543210", "work", now, now)

	mock.ExpectQuery("SELECT contact_id").
		WillReturnRows(rows)

	contacts, err := repo.GetAllContacts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[1].UserID != 0 {
		t.Errorf("expected NULL owner to scan as 0, got %d", contacts[1].UserID)
	}
}

func TestGetAllContacts_Empty(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id").
		WillReturnRows(sqlmock.NewRows(contactColumns()))

	contacts, err := repo.GetAllContacts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("expected empty slice, got %d contacts", len(contacts))
	}
}

func TestGetContactsByUserID_FiltersByOwner(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns()).
		AddRow("id-1", 7, "A", "a@x.com", "9876543210", "personal", now, now)

	mock.ExpectQuery("SELECT contact_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	contacts, err := repo.GetContactsByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 1 || contacts[0].UserID != 7 {
		t.Fatalf("expected one contact owned by user 7, got %+v", contacts)
	}
}

func TestGetContactByID_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT contact_id").
		WithArgs("missing-id").
		WillReturnRows(sqlmock.NewRows(contactColumns()))

	_, err := repo.GetContactByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestUpdateContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	name := "Renamed"
	phone := "9123456789"
	update := models.ContactUpdate{
		ContactID: "id-1",
		Name:      &name,
		Phone:     &phone,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns()).
		AddRow("id-1", 7, name, "a@x.com", phone, "personal", now, now)

	mock.ExpectQuery("UPDATE contacts").
		WithArgs(name, phone, "id-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateContact(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name || updated.Phone != phone {
		t.Errorf("expected updated fields, got %+v", updated)
	}
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	name := "Renamed"
	update := models.ContactUpdate{ContactID: "missing-id", Name: &name}

	mock.ExpectQuery("UPDATE contacts").
		WithArgs(name, "missing-id").
		WillReturnRows(sqlmock.NewRows(contactColumns()))

	_, err := repo.UpdateContact(context.Background(), update)
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestUpdateContact_NoFields(t *testing.T) {
	repo, _, db := newTestContactRepo(t)
	defer db.Close()

	_, err := repo.UpdateContact(context.Background(), models.ContactUpdate{ContactID: "id-1"})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestDeleteContact_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(contactColumns()).
		AddRow("id-1", 7, "A", "a@x.com", "9876543210", "personal", now, now)

	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs("id-1").
		WillReturnRows(rows)

	deleted, err := repo.DeleteContact(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ContactID != "id-1" {
		t.Errorf("expected deleted record back, got %+v", deleted)
	}
}

func TestDeleteContact_NotFound_Idempotent(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	// two consecutive deletes of the same missing ID both yield not-found
	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(contactColumns()))
	mock.ExpectQuery("DELETE FROM contacts").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(contactColumns()))

	_, err := repo.DeleteContact(context.Background(), "id-1")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}

	_, err = repo.DeleteContact(context.Background(), "id-1")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on repeated delete, got %v", err)
	}
}

func TestBuildUpdateContactQuery_AllFields(t *testing.T) {
	name := "N"
	email := "n@x.com"
	phone := "9876543210"
	contactType := models.Work

	query, args, err := buildUpdateContactQuery(models.ContactUpdate{
		ContactID: "id-1",
		Name:      &name,
		Email:     &email,
		Phone:     &phone,
		Type:      &contactType,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{"UPDATE contacts", "updated_at = NOW()", "name = $", "email = $", "phone = $", "type = $", "WHERE contact_id = $", "RETURNING"} {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected query to contain %q, got:\n%s", fragment, query)
		}
	}

	// args: name, email, phone, type, contact_id (updated_at is an expression)
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}
	if args[len(args)-1] != "id-1" {
		t.Errorf("expected contact ID as final arg, got %v", args[len(args)-1])
	}
}
