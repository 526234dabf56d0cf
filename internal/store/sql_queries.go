package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createContact = `INSERT INTO contacts (contact_id, user_id, name, email, phone, type)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING contact_id, user_id, name, email, phone, type, created_at, updated_at;`

	getAllContacts = `SELECT contact_id, user_id, name, email, phone, type, created_at, updated_at
    FROM contacts;`

	getContactsByUserID = `SELECT contact_id, user_id, name, email, phone, type, created_at, updated_at
    FROM contacts
    WHERE user_id = $1;`

	getContactByID = `SELECT contact_id, user_id, name, email, phone, type, created_at, updated_at
    FROM contacts
    WHERE contact_id = $1;`

	deleteContactByID = `DELETE FROM contacts
    WHERE contact_id = $1
    RETURNING contact_id, user_id, name, email, phone, type, created_at, updated_at;`
)
