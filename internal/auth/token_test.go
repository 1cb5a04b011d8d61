package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func testIdentity() Identity {
	return Identity{ID: "42", Username: "alice", Email: "alice@x.com"}
}

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	want := testIdentity()
	tok, err := IssueToken(testSecret, want, 2*time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	got, err := VerifyToken(testSecret, tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if got != want {
		t.Fatalf("identity mismatch: got %+v want %+v", got, want)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(testSecret, testIdentity(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := VerifyToken("some-other-secret", tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(testSecret, testIdentity(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	// Flip one character of the claims segment; the signature no longer
	// covers the altered bytes.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := VerifyToken(testSecret, tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(testSecret, testIdentity(), -time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := VerifyToken(testSecret, tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	// exp == now is already expired; a zero ttl must never verify.
	tok, err := IssueToken(testSecret, testIdentity(), 0)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := VerifyToken(testSecret, tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken at exp==now, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := VerifyToken(testSecret, raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestDecodeUnsafe_NoSignatureCheck(t *testing.T) {
	t.Parallel()

	want := testIdentity()
	// Signed with a secret the decoder never sees.
	tok, err := IssueToken("secret-unknown-to-decoder", want, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	claims, err := DecodeUnsafe(tok)
	if err != nil {
		t.Fatalf("DecodeUnsafe error: %v", err)
	}
	if claims.Data != want {
		t.Fatalf("identity mismatch: got %+v want %+v", claims.Data, want)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected exp and iat to be populated, got %+v", claims.RegisteredClaims)
	}
}
