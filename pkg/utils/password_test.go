package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "password123" {
		t.Error("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("password123", hash) {
		t.Error("expected correct password to verify")
	}

	if CheckPasswordHash("password124", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	// bcrypt salts every hash
	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}
