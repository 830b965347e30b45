package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// UserService is the super-admin account management surface.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Update edits name, email or role. Demoting the last super-admin is refused
// so the site can never be left without one.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserUpdateInput) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var changes domain.UserChanges
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		name := strings.TrimSpace(*in.Name)
		changes.Name = &name
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := domain.NormalizeEmail(*in.Email)
		changes.Email = &email
	}
	if in.Role != nil && *in.Role != target.Role {
		if target.Role == domain.RoleSuperAdmin {
			n, err := s.users.CountByRole(ctx, domain.RoleSuperAdmin)
			if err != nil {
				return nil, fmt.Errorf("update user: %w", err)
			}
			if n <= 1 {
				return nil, domain.ErrProtectedAccount
			}
		}
		role := *in.Role
		changes.Role = &role
	}

	updated, err := s.users.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", string(updated.Role)).Msg("user updated")
	return updated, nil
}

// Delete removes a user. Super-admin accounts cannot be deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleSuperAdmin {
		return domain.ErrProtectedAccount
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
