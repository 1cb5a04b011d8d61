package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookworm-labs/bookvault/internal/auth"
	"github.com/bookworm-labs/bookvault/internal/config"
	"github.com/bookworm-labs/bookvault/internal/model"
	"github.com/bookworm-labs/bookvault/internal/queue"
	"github.com/bookworm-labs/bookvault/internal/repository"
)

// AuthHandler bundles dependencies for signup and login. Events may be nil
// when no broker is configured.
type AuthHandler struct {
	Cfg    config.Config
	Users  UserStore
	Books  BookStore
	Events EventPublisher
}

func NewAuthHandler(cfg config.Config, u UserStore, b BookStore, ev EventPublisher) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Books: b, Events: ev}
}

// ----- DTOs -----

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
type authResp struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

// Signup: create the account and return a session token immediately.
// Duplicate username/email surfaces as a 409 naming the offending field;
// no account is created and no token issued in that case.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	u := model.User{ID: uid, Username: req.Username, Email: req.Email}
	token, err := h.issue(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	// Fire-and-forget; a broker outage must not fail the signup.
	if h.Events != nil {
		_ = h.Events.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       uid,
			Username:     req.Username,
			Email:        req.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, authResp{
		Token: token,
		User:  newUserView(u, nil),
	})
}

// Login: verify credentials and return a fresh token. An unknown
// email/username and a wrong password produce the same generic error so
// the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	if (req.Email == "" && req.Username == "") || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email or username and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		u   model.User
		err error
	)
	if req.Email != "" {
		u, err = h.Users.GetByEmail(ctx, req.Email)
	} else {
		u, err = h.Users.GetByUsername(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect credentials"})
	}

	token, err := h.issue(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	books, err := h.Books.ListByUser(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Token: token,
		User:  newUserView(u, books),
	})
}

func (h *AuthHandler) issue(u model.User) (string, error) {
	id := auth.Identity{
		ID:       strconv.FormatUint(u.ID, 10),
		Username: u.Username,
		Email:    u.Email,
	}
	ttl := time.Duration(h.Cfg.TokenTTLMin) * time.Minute
	return auth.IssueToken(h.Cfg.JWTSecret, id, ttl)
}
