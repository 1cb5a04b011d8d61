package handler

import (
	"context"
	"strings"

	"github.com/bookworm-labs/bookvault/internal/auth"
	"github.com/bookworm-labs/bookvault/internal/model"
	"github.com/bookworm-labs/bookvault/internal/queue"
	"github.com/bookworm-labs/bookvault/internal/repository"
)

// fakeUserStore is an in-memory UserStore honoring the same contract as
// the SQL repository: unique username/email, sentinel errors, bcrypt
// hashed secrets.
type fakeUserStore struct {
	nextID uint64
	users  map[uint64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]model.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, username, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Username == username {
			return 0, repository.ErrUsernameExists
		}
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	s.users[s.nextID] = model.User{ID: s.nextID, Username: username, Email: email, PasswordHash: hash}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for id := uint64(1); id <= s.nextID; id++ {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeBookStore mirrors the saved_books contract: save is an upsert keyed
// on book id, remove of an absent book is a no-op.
type fakeBookStore struct {
	books map[uint64][]model.Book
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: map[uint64][]model.Book{}}
}

func (s *fakeBookStore) Save(_ context.Context, userID uint64, b model.Book) error {
	for i, have := range s.books[userID] {
		if have.BookID == b.BookID {
			s.books[userID][i] = b
			return nil
		}
	}
	s.books[userID] = append(s.books[userID], b)
	return nil
}

func (s *fakeBookStore) Remove(_ context.Context, userID uint64, bookID string) error {
	kept := s.books[userID][:0]
	for _, b := range s.books[userID] {
		if b.BookID != bookID {
			kept = append(kept, b)
		}
	}
	s.books[userID] = kept
	return nil
}

func (s *fakeBookStore) ListByUser(_ context.Context, userID uint64) ([]model.Book, error) {
	out := make([]model.Book, len(s.books[userID]))
	copy(out, s.books[userID])
	return out, nil
}

func (s *fakeBookStore) CountByUser(_ context.Context, userID uint64) (int, error) {
	return len(s.books[userID]), nil
}

// fakePublisher records published events so tests can assert handlers emit
// them without a broker.
type fakePublisher struct {
	registered []queue.UserRegisteredEvent
	saved      []queue.BookSavedEvent
}

func (p *fakePublisher) PublishUserRegistered(_ context.Context, ev queue.UserRegisteredEvent) error {
	p.registered = append(p.registered, ev)
	return nil
}

func (p *fakePublisher) PublishBookSaved(_ context.Context, ev queue.BookSavedEvent) error {
	p.saved = append(p.saved, ev)
	return nil
}
