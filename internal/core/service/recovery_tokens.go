package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

const recoveryTokenBytes = 20

// RecoveryTokens implements single-use, time-boxed tokens for password reset
// and invitations. Only the SHA-256 of the plaintext is stored; the
// plaintext is returned once from Issue and is meant for the email link.
type RecoveryTokens struct {
	users ports.UserRepository
	ttls  map[domain.RecoveryKind]time.Duration
	now   func() time.Time
}

func NewRecoveryTokens(users ports.UserRepository, resetTTL, inviteTTL time.Duration) *RecoveryTokens {
	return &RecoveryTokens{
		users: users,
		ttls: map[domain.RecoveryKind]time.Duration{
			domain.RecoveryReset:  resetTTL,
			domain.RecoveryInvite: inviteTTL,
		},
		now: time.Now,
	}
}

// HashRecoveryToken is the one-way function applied before storage and lookup.
func HashRecoveryToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Issue generates a token, persists its hash and expiry on the user and
// returns the plaintext.
func (r *RecoveryTokens) Issue(ctx context.Context, userID string, kind domain.RecoveryKind) (string, error) {
	ttl, ok := r.ttls[kind]
	if !ok || ttl <= 0 {
		return "", fmt.Errorf("issue %s token: no ttl configured", kind)
	}

	buf := make([]byte, recoveryTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("issue %s token: %w", kind, err)
	}
	plaintext := hex.EncodeToString(buf)

	token := &domain.RecoveryToken{
		Hash:      HashRecoveryToken(plaintext),
		ExpiresAt: r.now().Add(ttl).UTC(),
	}
	if err := r.users.SetRecoveryToken(ctx, userID, kind, token); err != nil {
		return "", fmt.Errorf("issue %s token: %w", kind, err)
	}
	return plaintext, nil
}

// Revoke clears the token pair for kind.
func (r *RecoveryTokens) Revoke(ctx context.Context, userID string, kind domain.RecoveryKind) error {
	if err := r.users.SetRecoveryToken(ctx, userID, kind, nil); err != nil {
		return fmt.Errorf("revoke %s token: %w", kind, err)
	}
	return nil
}

// Consume resolves plaintext to a user, asks effect for the state change
// that completes the flow, and applies it together with clearing the token.
// A token can be consumed at most once.
func (r *RecoveryTokens) Consume(
	ctx context.Context,
	kind domain.RecoveryKind,
	plaintext string,
	effect func(*domain.User) (domain.UserChanges, error),
) (*domain.User, error) {
	if plaintext == "" {
		return nil, domain.ErrInvalidOrExpiredToken
	}
	hash := HashRecoveryToken(plaintext)
	now := r.now()

	user, err := r.users.FindByRecoveryToken(ctx, kind, hash, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("consume %s token: %w", kind, err)
	}

	changes, err := effect(user)
	if err != nil {
		return nil, err
	}

	updated, err := r.users.ConsumeRecoveryToken(ctx, kind, hash, now, changes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			return nil, err
		}
		return nil, fmt.Errorf("consume %s token: %w", kind, err)
	}
	return updated, nil
}
