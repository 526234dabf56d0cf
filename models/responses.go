package models

// Response is the envelope shared by every JSON reply the API produces,
// on both success and failure paths. Payload-carrying responses embed it.
type Response struct {
	// Message is a short human-readable description of the outcome.
	// Error responses carry only the fixed taxonomy message here,
	// never internal error text.
	Message string `json:"message"`

	// Success reports whether the requested operation completed.
	Success bool `json:"success"`
}

// UserResponse is returned by registration: the envelope plus the created
// user record with the password hash stripped (User.PasswordHash carries
// `json:"-"`).
type UserResponse struct {
	Response
	User User `json:"user"`
}

// LoginResponse is returned by a successful login: the envelope, the signed
// bearer token, and the authenticated user record.
type LoginResponse struct {
	Response
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ContactResponse carries a single contact record.
type ContactResponse struct {
	Response
	Contact Contact `json:"contact"`
}

// ContactListResponse carries a list of contact records.
type ContactListResponse struct {
	Response
	Contacts []Contact `json:"contacts"`
}
