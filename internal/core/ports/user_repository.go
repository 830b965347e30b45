package ports

import (
	"context"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID never populates PasswordHash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Exists reports whether at least one user record is present.
	Exists(ctx context.Context) (bool, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	Update(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// SetRecoveryToken stores (or, with a nil token, clears) the hash/expiry
	// pair for kind.
	SetRecoveryToken(ctx context.Context, id string, kind domain.RecoveryKind, token *domain.RecoveryToken) error
	// FindByRecoveryToken matches the exact hash with expiry strictly after now.
	FindByRecoveryToken(ctx context.Context, kind domain.RecoveryKind, hash string, now time.Time) (*domain.User, error)
	// ConsumeRecoveryToken applies changes and clears the token pair in one
	// write, only if the hash still matches and has not expired. Returns
	// domain.ErrInvalidOrExpiredToken when nothing matched.
	ConsumeRecoveryToken(ctx context.Context, kind domain.RecoveryKind, hash string, now time.Time, changes domain.UserChanges) (*domain.User, error)
}
