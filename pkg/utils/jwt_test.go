package utils

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	token, err := GenerateToken(42, config)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, err := ParseToken(token, config)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token, JWTConfig{Secret: "other-secret", ExpiryHours: 1}); err == nil {
		t.Error("expected signature verification to fail")
	}
}

func TestTokenExpired(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryHours: -1}

	token, err := GenerateToken(42, config)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token, config); err == nil {
		t.Error("expected expired token to fail")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", JWTConfig{Secret: "test-secret"}); err == nil {
		t.Error("expected malformed token to fail")
	}
}
