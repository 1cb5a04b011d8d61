package authclient

import (
	"testing"
	"time"

	"github.com/bookworm-labs/bookvault/internal/auth"
)

// memStore is an in-memory TokenStore standing in for browser-local
// storage.
type memStore struct{ token string }

func (m *memStore) Get() string  { return m.token }
func (m *memStore) Set(t string) { m.token = t }
func (m *memStore) Clear()       { m.token = "" }

func issue(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.IssueToken("client-test-secret",
		auth.Identity{ID: "1", Username: "alice", Email: "alice@x.com"}, ttl)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	return tok
}

func TestLoggedIn_Lifecycle(t *testing.T) {
	t.Parallel()

	s := &memStore{}
	if LoggedIn(s) {
		t.Fatalf("logged in with empty store")
	}

	Login(s, issue(t, time.Hour))
	if !LoggedIn(s) {
		t.Fatalf("not logged in after Login with a fresh token")
	}

	Logout(s)
	if LoggedIn(s) {
		t.Fatalf("still logged in after Logout")
	}
	if s.Get() != "" {
		t.Fatalf("Logout left a token behind")
	}
}

func TestLoggedIn_ExpiredToken(t *testing.T) {
	t.Parallel()

	s := &memStore{}
	Login(s, issue(t, -time.Minute))
	if LoggedIn(s) {
		t.Fatalf("logged in with an expired token")
	}
}

func TestIsExpired_UndecodableIsNotExpired(t *testing.T) {
	t.Parallel()

	// An unreadable token is left for the server to reject; the client
	// does not treat it as expired.
	if IsExpired("garbage") {
		t.Fatalf("undecodable token reported as expired")
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()

	s := &memStore{}
	Login(s, issue(t, time.Hour))

	id, err := Profile(s)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if id.Username != "alice" || id.Email != "alice@x.com" || id.ID != "1" {
		t.Fatalf("profile mismatch: %+v", id)
	}
}
