package handler

import (
	"context"
	"strconv"

	"github.com/bookworm-labs/bookvault/internal/model"
	"github.com/bookworm-labs/bookvault/internal/queue"
)

// UserStore is the slice of the user repository the handlers depend on.
// Declared here so tests can swap in an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// BookStore is the saved-books repository surface used by handlers.
// CountByUser exists alongside ListByUser so list endpoints can report
// collection sizes without loading every row.
type BookStore interface {
	Save(ctx context.Context, userID uint64, b model.Book) error
	Remove(ctx context.Context, userID uint64, bookID string) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Book, error)
	CountByUser(ctx context.Context, userID uint64) (int, error)
}

// EventPublisher is the broker surface the handlers publish domain events
// through. A nil publisher disables eventing; handlers must tolerate that.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event queue.UserRegisteredEvent) error
	PublishBookSaved(ctx context.Context, event queue.BookSavedEvent) error
}

// VolumeSearcher abstracts the Google Books client for the search proxy.
type VolumeSearcher interface {
	Search(ctx context.Context, q string, maxResults int) ([]model.Book, error)
}

// userView is the sanitized user shape returned by the API. It carries
// everything the web client's user model expects and never the password
// hash.
type userView struct {
	ID         string       `json:"_id"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	BookCount  int          `json:"bookCount"`
	SavedBooks []model.Book `json:"savedBooks"`
}

// userSummary is the lighter shape served by the public user directory:
// identity plus collection size, without the book rows themselves.
type userSummary struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	BookCount int    `json:"bookCount"`
}

// newUserView assembles a userView from a user record and its saved books.
// SavedBooks is always a slice, never null, so clients can iterate without
// guarding.
func newUserView(u model.User, books []model.Book) userView {
	if books == nil {
		books = []model.Book{}
	}
	return userView{
		ID:         strconv.FormatUint(u.ID, 10),
		Username:   u.Username,
		Email:      u.Email,
		BookCount:  len(books),
		SavedBooks: books,
	}
}
