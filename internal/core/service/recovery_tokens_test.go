package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *memUsers, u domain.User) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &u)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func setPassword(changes *domain.UserChanges, hash string) func(*domain.User) (domain.UserChanges, error) {
	return func(*domain.User) (domain.UserChanges, error) {
		changes.PasswordHash = &hash
		return *changes, nil
	}
}

func TestRecoveryTokens_IssueStoresOnlyHash(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)

	plain, err := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(plain) != 2*recoveryTokenBytes {
		t.Fatalf("expected %d hex chars, got %d", 2*recoveryTokenBytes, len(plain))
	}

	stored := repo.get(u.ID).Reset
	if stored == nil || stored.Hash == plain || stored.Hash != HashRecoveryToken(plain) {
		t.Fatalf("expected hashed token, got %+v", stored)
	}
	if d := time.Until(stored.ExpiresAt); d <= 9*time.Minute || d > 10*time.Minute {
		t.Fatalf("unexpected expiry in %v", d)
	}
	if repo.get(u.ID).Invite != nil {
		t.Fatal("reset token must not touch the invite slot")
	}
}

func TestRecoveryTokens_SingleUse(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)

	var changes domain.UserChanges
	if _, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h1")); err != nil {
		t.Fatalf("first consume: %v", err)
	}
	if repo.get(u.ID).Reset != nil {
		t.Fatal("token must be cleared after use")
	}

	_, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h2"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("second consume: expected ErrInvalidOrExpiredToken, got %v", err)
	}
	if repo.get(u.ID).PasswordHash != "h1" {
		t.Fatal("second consume must not change the password")
	}
}

func TestRecoveryTokens_Expired(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)

	rt.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	var changes domain.UserChanges
	_, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
	}
}

func TestRecoveryTokens_InviteExpiresAfterADay(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin, IsInvited: true})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt.now = func() time.Time { return issued }
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryInvite)

	var changes domain.UserChanges
	rt.now = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
	_, err := rt.Consume(context.Background(), domain.RecoveryInvite, plain, setPassword(&changes, "h"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("day-old invite: expected ErrInvalidOrExpiredToken, got %v", err)
	}

	// Well past the reset TTL but inside the invite TTL.
	rt.now = func() time.Time { return issued.Add(23 * time.Hour) }
	if _, err := rt.Consume(context.Background(), domain.RecoveryInvite, plain, setPassword(&changes, "h")); err != nil {
		t.Fatalf("invite within 24h: %v", err)
	}
}

func TestRecoveryTokens_ExpiryIsExclusive(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt.now = func() time.Time { return issued }
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)
	expiresAt := repo.get(u.ID).Reset.ExpiresAt

	var changes domain.UserChanges
	rt.now = func() time.Time { return expiresAt }
	_, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("token at its expiry instant: expected ErrInvalidOrExpiredToken, got %v", err)
	}

	rt.now = func() time.Time { return expiresAt.Add(-time.Nanosecond) }
	if _, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h")); err != nil {
		t.Fatalf("token just before expiry: %v", err)
	}
}

func TestRecoveryTokens_KindsAreSeparate(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryInvite)

	var changes domain.UserChanges
	_, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, setPassword(&changes, "h"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("invite token used as reset: expected ErrInvalidOrExpiredToken, got %v", err)
	}
}

func TestRecoveryTokens_ReissueInvalidatesPrevious(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	first, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)
	if _, err := rt.Issue(context.Background(), u.ID, domain.RecoveryReset); err != nil {
		t.Fatalf("reissue: %v", err)
	}

	var changes domain.UserChanges
	_, err := rt.Consume(context.Background(), domain.RecoveryReset, first, setPassword(&changes, "h"))
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
	}
}

func TestRecoveryTokens_EffectErrorLeavesTokenUsable(t *testing.T) {
	repo := newMemUsers()
	u := seedUser(t, repo, domain.User{Email: "a@example.com", Role: domain.RoleAdmin})
	rt := NewRecoveryTokens(repo, 10*time.Minute, 24*time.Hour)
	plain, _ := rt.Issue(context.Background(), u.ID, domain.RecoveryReset)

	_, err := rt.Consume(context.Background(), domain.RecoveryReset, plain, func(*domain.User) (domain.UserChanges, error) {
		return domain.UserChanges{}, errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected effect error, got %v", err)
	}
	if repo.get(u.ID).Reset == nil {
		t.Fatal("token must survive a failed effect")
	}
}

func TestRecoveryTokens_EmptyToken(t *testing.T) {
	rt := NewRecoveryTokens(newMemUsers(), time.Minute, time.Minute)
	_, err := rt.Consume(context.Background(), domain.RecoveryReset, "", func(*domain.User) (domain.UserChanges, error) {
		t.Fatal("effect must not run")
		return domain.UserChanges{}, nil
	})
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected ErrInvalidOrExpiredToken, got %v", err)
	}
}
