package auth // package auth implements session token issuing and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Identity is the claim set a session token asserts about a user. It is
// embedded in the token under the "data" key, mirroring the payload shape
// the web client expects: {"data":{"_id","username","email"},"exp","iat"}.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Claims is the full wire payload of a session token: the identity under
// "data" plus the registered expiry and issued-at timestamps.
type Claims struct {
	Data Identity `json:"data"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned for every verification failure: malformed
// input, a signature not produced by our secret, or an expired token.
// Callers are deliberately not told which; the distinction is a client-side
// concern handled via DecodeUnsafe.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken builds and signs an HS256 session token for the given
// identity, valid for ttl measured from now. The secret must be the
// process-wide signing key loaded at startup.
func IssueToken(secret string, id Identity, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Data: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken parses raw, checks its signature against secret and its
// expiry against the current time, and returns the embedded identity.
// A token whose expiry equals "now" is already expired. Any failure maps
// to ErrInvalidToken.
func VerifyToken(secret, raw string) (Identity, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; otherwise a crafted
		// "alg":"none" or asymmetric token could slip through.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	return claims.Data, nil
}

// DecodeUnsafe returns the claims of raw without verifying the signature.
// It exists for display and expiry checks only (e.g. a client deciding
// whether its stored token is still worth sending) and must never be used
// to authorize anything.
func DecodeUnsafe(raw string) (Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Claims{}, err
	}
	return *claims, nil
}
