package models

import "time"

// User represents an account entity used for authentication and contact
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at registration.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lowercase-normalised email address.
	// Used as the login identifier during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It MUST never be serialised outward under any circumstance.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
