package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookworm-labs/bookvault/internal/model"
	"github.com/bookworm-labs/bookvault/internal/queue"
	"github.com/bookworm-labs/bookvault/internal/repository"
)

// BookHandler mutates the authenticated user's saved-book collection.
// Both routes sit behind the strict session middleware, so an anonymous or
// invalid-token request never reaches these handlers. Events may be nil
// when no broker is configured.
type BookHandler struct {
	Users  UserStore
	Books  BookStore
	Events EventPublisher
}

func NewBookHandler(u UserStore, b BookStore, ev EventPublisher) *BookHandler {
	return &BookHandler{Users: u, Books: b, Events: ev}
}

// Save adds a book to the user's collection and returns the updated user
// record. Saving the same book twice is idempotent: the collection holds
// the book exactly once however often the client retries.
func (h *BookHandler) Save(c echo.Context) error {
	uid, ok := currentUID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
	}

	var b model.Book
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b.BookID = strings.TrimSpace(b.BookID)
	if b.BookID == "" || strings.TrimSpace(b.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookId/title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Books.Save(ctx, uid, b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save book failed"})
	}

	// Fire-and-forget; consumers dedupe repeats.
	if h.Events != nil {
		_ = h.Events.PublishBookSaved(ctx, queue.BookSavedEvent{
			UserID:   uid,
			Username: u.Username,
			BookID:   b.BookID,
			Title:    b.Title,
			Authors:  b.Authors,
			SavedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	books, err := h.Books.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, newUserView(u, books))
}

// Remove deletes a book from the collection by its id and returns the
// (possibly unchanged) user record. Removing a book that was never saved
// is a no-op, not an error.
func (h *BookHandler) Remove(c echo.Context) error {
	uid, ok := currentUID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
	}
	bookID := strings.TrimSpace(c.Param("bookId"))
	if bookID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Books.Remove(ctx, uid, bookID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove book failed"})
	}

	books, err := h.Books.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, newUserView(u, books))
}
