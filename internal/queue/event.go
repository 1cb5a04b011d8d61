// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published when a signup completes. Downstream
// consumers (welcome mail, analytics) get enough to act without querying
// the primary database.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

// BookSavedEvent is published when a user saves a book to their
// collection. Repeated saves of the same book republish the event;
// consumers dedupe on (user_id, book_id) if they care.
type BookSavedEvent struct {
	UserID   uint64   `json:"user_id"`
	Username string   `json:"username"`
	BookID   string   `json:"book_id"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	SavedAt  string   `json:"saved_at"`
}
