package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bookworm-labs/bookvault/internal/config"
	"github.com/bookworm-labs/bookvault/internal/handler"
	"github.com/bookworm-labs/bookvault/internal/middleware"
)

// Deps collects everything route registration needs: configuration, the
// handlers, and the optional Redis client powering the response cache and
// the auth rate limiter. A nil Redis client disables both.
type Deps struct {
	Cfg    config.Config
	Auth   *handler.AuthHandler
	Users  *handler.UserHandler
	Books  *handler.BookHandler
	Search *handler.SearchHandler
	Redis  *redis.Client
}

// Register wires all application routes onto the provided Echo instance.
//
// Two session policies coexist on purpose, mirroring the client contract:
//   - /api/users/books* use the strict middleware, which rejects missing or
//     invalid tokens with 401 before the handler runs;
//   - the user queries (/me, /users, /users/:id) use the lenient
//     middleware, which lets anonymous requests through and leaves the
//     401 decision to each handler.
func Register(e *echo.Echo, d Deps) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), d.Redis)

	api := e.Group("/api")

	// Account lifecycle; throttled, anonymous by nature.
	api.POST("/users", d.Auth.Signup, limiter)
	api.POST("/users/login", d.Auth.Login, limiter)

	// Read-side user queries under the lenient policy.
	optional := middleware.OptionalUser(d.Cfg.JWTSecret)
	api.GET("/users/me", d.Users.Me, optional)
	api.GET("/users", d.Users.List, optional)
	api.GET("/users/:id", d.Users.Get, optional)

	// Saved-book mutations under the strict policy.
	required := middleware.RequireUser(d.Cfg.JWTSecret)
	api.PUT("/users/books", d.Books.Save, required)
	api.DELETE("/users/books/:bookId", d.Books.Remove, required)

	// Public search proxy, served from cache when possible.
	api.GET("/books/search", d.Search.Search, cache)
}
