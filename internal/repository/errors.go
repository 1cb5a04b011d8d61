// Package repository defines the SQL data access layer and the sentinel
// errors shared across repositories. The sentinels let handlers map
// storage-level failures onto field-oriented HTTP responses: a duplicate
// username becomes a 409 naming the username field, a missing account a
// 404, and so on.
package repository

import "errors"

// ErrUsernameExists is returned on signup when the requested username is
// already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned on signup when the requested email address is
// already registered.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a referenced user does not exist.
var ErrNotFound = errors.New("not found")
