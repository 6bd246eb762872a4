package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	token, expiresAt, err := mgr.GenerateToken("uid-42", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.Subject != "uid-42" {
		t.Fatalf("expected subject uid-42, got %s", claims.Subject)
	}
	if !strings.EqualFold(claims.Email, "user@example.com") {
		t.Fatalf("expected email user@example.com, got %s", claims.Email)
	}

	userID, err := mgr.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if userID != "uid-42" {
		t.Fatalf("expected uid-42, got %s", userID)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestVerifyRejections(t *testing.T) {
	mgr, _ := NewManager("test-secret", "issuer", time.Hour)
	other, _ := NewManager("other-secret", "issuer", time.Hour)
	foreignIssuer, _ := NewManager("test-secret", "someone-else", time.Hour)

	forged, _, _ := other.GenerateToken("uid-1", "")
	wrongIssuer, _, _ := foreignIssuer.GenerateToken("uid-1", "")

	expiredClaims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "uid-1",
		Issuer:    "issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))

	noSubjectClaims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, noSubjectClaims).SignedString([]byte("test-secret"))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "  ", want: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", want: ErrInvalidToken},
		{name: "wrong secret", token: forged, want: ErrInvalidToken},
		{name: "wrong issuer", token: wrongIssuer, want: ErrInvalidToken},
		{name: "expired", token: expired, want: ErrInvalidToken},
		{name: "no subject", token: noSubject, want: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mgr.Verify(context.Background(), tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
