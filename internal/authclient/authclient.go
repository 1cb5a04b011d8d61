// Package authclient is the client-side counterpart of the session token
// flow: a set of stateless functions over a single stored token string.
// Browser or CLI frontends keep the token under one well-known key; the
// TokenStore interface stands in for that storage so the helpers are
// testable without a real browser-local store.
//
// Everything here uses unverified decoding only. These helpers answer
// "should I bother sending this token" for display and UX purposes; the
// server re-verifies the signature on every request regardless.
package authclient

import (
	"time"

	"github.com/bookworm-labs/bookvault/internal/auth"
)

// TokenStore abstracts wherever the client persists its session token.
type TokenStore interface {
	Get() string
	Set(token string)
	Clear()
}

// Login stores a freshly issued token.
func Login(s TokenStore, token string) { s.Set(token) }

// Logout discards the stored token. This is the entire logout mechanism:
// the server keeps no session state, so forgetting the token ends the
// session.
func Logout(s TokenStore) { s.Clear() }

// LoggedIn reports whether a token is stored and not yet expired.
func LoggedIn(s TokenStore) bool {
	tok := s.Get()
	return tok != "" && !IsExpired(tok)
}

// IsExpired reports whether the token's embedded expiry has passed. A
// token that cannot be decoded at all is reported as not expired, leaving
// the final word to the server's verification.
func IsExpired(token string) bool {
	claims, err := auth.DecodeUnsafe(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(time.Now())
}

// Profile returns the identity embedded in the stored token for display
// purposes. It must never be used to authorize anything.
func Profile(s TokenStore) (auth.Identity, error) {
	claims, err := auth.DecodeUnsafe(s.Get())
	if err != nil {
		return auth.Identity{}, err
	}
	return claims.Data, nil
}
