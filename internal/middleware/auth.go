package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookworm-labs/bookvault/internal/auth"
)

// Context keys under which the verified identity is stored. Handlers read
// these via c.Get().
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxEmail    = "email"
)

// RequireUser returns an Echo middleware that validates a Bearer session
// token and injects the verified identity into the request context. A
// missing, malformed, badly signed or expired token is rejected with 401
// before any handler runs. The provided secret must match the one used
// when issuing tokens.
func RequireUser(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			id, err := auth.VerifyToken(secret, raw)
			if err != nil {
				// One generic rejection for every failure cause; callers
				// are not told whether the token was tampered with or
				// merely expired.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			setIdentity(c, id)
			return next(c)
		}
	}
}

// OptionalUser returns an Echo middleware implementing the lenient session
// policy: if a valid Bearer token is present, the identity is attached to
// the context; if the header is absent or verification fails the request
// proceeds anonymously and each handler decides whether anonymous access
// is acceptable. Public queries stay reachable without a token while
// protected handlers check CurrentUserID themselves.
func OptionalUser(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := bearerToken(c); ok {
				if id, err := auth.VerifyToken(secret, raw); err == nil {
					setIdentity(c, id)
				}
			}
			return next(c)
		}
	}
}

// CurrentUserID returns the verified user id from the context, or "" when
// the request is anonymous.
func CurrentUserID(c echo.Context) string {
	if v, ok := c.Get(CtxUserID).(string); ok {
		return v
	}
	return ""
}

// bearerToken extracts the raw token from an "Authorization: Bearer x"
// header. ok is false when the header is absent or not in Bearer form.
func bearerToken(c echo.Context) (string, bool) {
	h := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return raw, raw != ""
}

func setIdentity(c echo.Context, id auth.Identity) {
	c.Set(CtxUserID, id.ID)
	c.Set(CtxUsername, id.Username)
	c.Set(CtxEmail, id.Email)
}
