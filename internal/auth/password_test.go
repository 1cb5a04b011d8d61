package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"pw123", "correct horse battery staple", "päron🜚"} {
		hash, err := HashPassword(pw, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("HashPassword(%q) error: %v", pw, err)
		}
		if hash == pw {
			t.Fatalf("hash equals plaintext for %q", pw)
		}
		if !VerifyPassword(hash, pw) {
			t.Fatalf("VerifyPassword rejected correct password %q", pw)
		}
		if VerifyPassword(hash, pw+"x") {
			t.Fatalf("VerifyPassword accepted wrong password for %q", pw)
		}
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical; salting is broken")
	}
}
