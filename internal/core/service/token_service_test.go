package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/njrexim/cms-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("0123456789abcdef", time.Hour)

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != "user-1" {
		t.Fatalf("expected user-1, got %q", got)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("0123456789abcdef", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Minute)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_RejectsForeignSecretAndAlgorithm(t *testing.T) {
	svc := NewTokenService("0123456789abcdef", time.Hour)
	other := NewTokenService("fedcba9876543210", time.Hour)

	foreign, _ := other.Issue("user-1")
	if _, err := svc.Verify(foreign); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("foreign secret: expected ErrInvalidToken, got %v", err)
	}

	claims := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := svc.Verify(none); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("alg none: expected ErrInvalidToken, got %v", err)
	}

	if _, err := svc.Verify("not.a.jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("garbage: expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_RequiresExpiry(t *testing.T) {
	svc := NewTokenService("0123456789abcdef", time.Hour)
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString([]byte("0123456789abcdef"))

	if _, err := svc.Verify(noExp); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("0123456789abcdef", 0)
	if svc.ttl != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", svc.ttl)
	}
	if _, err := svc.Issue(""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
