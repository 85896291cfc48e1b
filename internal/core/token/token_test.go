package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService("secret", time.Hour)

	raw, err := svc.Issue("alice", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("expected role manager, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected exp claim to be set")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

func TestService_DefaultTTL(t *testing.T) {
	svc := NewService("secret", 0)
	if svc.TTL() != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, svc.TTL())
	}
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	// Craft a token whose expiry is already one second in the past but
	// whose signature is otherwise valid.
	claims := Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestService_Verify_WrongKey(t *testing.T) {
	issuer := NewService("key-one", time.Hour)
	verifier := NewService("key-two", time.Hour)

	raw, err := issuer.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_Verify_WrongAlgorithm(t *testing.T) {
	svc := NewService("secret", time.Hour)

	// An unsigned token must be rejected even though its body parses.
	claims := jwt.MapClaims{"sub": "alice", "role": "admin"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
