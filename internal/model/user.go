package model

import "time"

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column. JSON tags are omitted on
// purpose: handlers define their own response types so that the password
// hash can never leak into a serialized payload by accident.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique display name chosen at signup.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password; the plaintext is never stored.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
