package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_IsBcrypt(t *testing.T) {
	hash, err := HashPassword("Secr3t!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "Secr3t!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt prefix, got %q", hash)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != bcrypt.MinCost {
		t.Errorf("expected cost %d, got %d (%v)", bcrypt.MinCost, cost, err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("Secr3t!", bcrypt.MinCost)
	h2, _ := HashPassword("Secr3t!", bcrypt.MinCost)
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("x", 73)

	hash, err := HashPassword(long, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error for a 73-byte password, got: %v", err)
	}

	if err := CheckPassword(hash, long); err != nil {
		t.Errorf("expected the long password to match, got %v", err)
	}
	// bytes past the 72nd are not part of the hash
	if err := CheckPassword(hash, strings.Repeat("x", 72)+"y"); err != nil {
		t.Errorf("expected a match on the first 72 bytes, got %v", err)
	}
	if err := CheckPassword(hash, strings.Repeat("x", 71)+"y"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secr3t!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if err := CheckPassword(hash, "Secr3t!"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := CheckPassword(hash, "secr3t!"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-hash", "Secr3t!")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a non-mismatch error, got %v", err)
	}
}
