package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "u42",
		"exp": exp.Unix(),
	})

	info, err := InspectToken(token)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.Subject != "u42" {
		t.Fatalf("subject = %q, want u42", info.Subject)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Fatalf("expires = %v, want %v", info.ExpiresAt, exp)
	}
	if info.Expired() {
		t.Fatalf("token should not be expired")
	}
}

func TestInspectToken_Expired(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})

	info, err := InspectToken(token)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !info.Expired() {
		t.Fatalf("expected expired token")
	}
}

func TestInspectToken_Opaque(t *testing.T) {
	if _, err := InspectToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for an opaque token")
	}
}

func TestInspectToken_NoExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})

	info, err := InspectToken(token)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.Expired() {
		t.Fatalf("token without exp must not report expired")
	}
}
