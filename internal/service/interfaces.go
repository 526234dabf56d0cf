package service

import (
	"context"

	"github.com/MKhiriev/contact-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ContactService interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
	GetContactsByUserID(ctx context.Context, userID int64) ([]models.Contact, error)
	GetContactByID(ctx context.Context, contactID string) (models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID string) (models.Contact, error)
}
