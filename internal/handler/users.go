package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookworm-labs/bookvault/internal/middleware"
	"github.com/bookworm-labs/bookvault/internal/repository"
)

// UserHandler serves the read-side user queries. These routes run under
// the lenient session policy: anonymous requests reach the handlers, and
// only Me insists on an identity (returning 401 itself rather than letting
// middleware reject the request).
type UserHandler struct {
	Users UserStore
	Books BookStore
}

func NewUserHandler(u UserStore, b BookStore) *UserHandler {
	return &UserHandler{Users: u, Books: b}
}

// Me returns the authenticated user's record including saved books.
func (h *UserHandler) Me(c echo.Context) error {
	uid, ok := currentUID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Valid token for an account that no longer exists.
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	books, err := h.Books.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, newUserView(u, books))
}

// List returns all users as summaries: identity and collection size, no
// book rows. Clients fetch a single user for the full collection.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	views := make([]userSummary, 0, len(users))
	for _, u := range users {
		n, err := h.Books.CountByUser(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		views = append(views, userSummary{
			ID:        strconv.FormatUint(u.ID, 10),
			Username:  u.Username,
			Email:     u.Email,
			BookCount: n,
		})
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	books, err := h.Books.ListByUser(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, newUserView(u, books))
}

// currentUID reads the verified identity from the request context and
// parses it into a storage id. ok is false for anonymous requests.
func currentUID(c echo.Context) (uint64, bool) {
	s := middleware.CurrentUserID(c)
	if s == "" {
		return 0, false
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uid, true
}
