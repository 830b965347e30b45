package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// AuthOptions are the immutable knobs the auth flows need at runtime.
type AuthOptions struct {
	ResetTTL  time.Duration
	InviteTTL time.Duration
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

// AuthService implements login, first-run setup, profile self-service and
// the reset/invite recovery flows.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	recovery *RecoveryTokens
	mailer   ports.Mailer
	emails   *EmailComposer
	opts     AuthOptions
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	recovery *RecoveryTokens,
	mailer ports.Mailer,
	emails *EmailComposer,
	opts AuthOptions,
	log zerolog.Logger,
) *AuthService {
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		recovery: recovery,
		mailer:   mailer,
		emails:   emails,
		opts:     opts,
		log:      log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if user.IsInvited {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.session(user)
}

// Setup creates the first super-admin. It is inert once any user exists.
func (s *AuthService) Setup(ctx context.Context, in ports.SetupInput) (*ports.Session, error) {
	exists, err := s.users.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyInitialized
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("initial super admin created")
	return s.session(user)
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileInput) (*ports.Session, error) {
	var changes domain.UserChanges
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		changes.Name = &name
	}
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		changes.Email = &email
	}
	if in.Password != nil {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, userID, changes)
	if err != nil {
		return nil, err
	}
	return s.session(user)
}

// ForgotPassword issues a reset token and emails it. If the email cannot be
// delivered the token is revoked before the error is returned.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user.IsInvited {
		return domain.ErrUserNotFound
	}

	token, err := s.recovery.Issue(ctx, user.ID, domain.RecoveryReset)
	if err != nil {
		return err
	}

	msg, err := s.emails.ResetPassword(ctx, user, token, s.opts.ResetTTL)
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		if rbErr := s.recovery.Revoke(ctx, user.ID, domain.RecoveryReset); rbErr != nil {
			s.log.Error().Err(rbErr).Str("user_id", user.ID).Msg("failed to roll back reset token")
		}
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("reset email not delivered")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) (*ports.Session, error) {
	user, err := s.recovery.Consume(ctx, domain.RecoveryReset, token, func(*domain.User) (domain.UserChanges, error) {
		hash, err := s.hash(password)
		if err != nil {
			return domain.UserChanges{}, err
		}
		return domain.UserChanges{PasswordHash: &hash}, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return s.session(user)
}

// Invite creates a placeholder account with an unusable password and emails
// an invitation. A delivery failure deletes the placeholder.
func (s *AuthService) Invite(ctx context.Context, in ports.InviteInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.NewValidationError("email", "a user with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invite: %w", err)
	}

	placeholder, err := randomSecret()
	if err != nil {
		return nil, fmt.Errorf("invite: %w", err)
	}
	hash, err := s.hash(placeholder)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         "Invited User",
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		IsInvited:    true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewValidationError("email", "a user with this email already exists")
		}
		return nil, fmt.Errorf("invite: %w", err)
	}

	token, err := s.recovery.Issue(ctx, user.ID, domain.RecoveryInvite)
	if err != nil {
		s.discardPlaceholder(ctx, user.ID)
		return nil, err
	}

	inviter := "An administrator"
	if in.InvitedBy != nil && in.InvitedBy.Name != "" {
		inviter = in.InvitedBy.Name
	}
	msg, err := s.emails.Invitation(ctx, email, in.Role, inviter, token, s.opts.InviteTTL)
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		s.discardPlaceholder(ctx, user.ID)
		s.log.Warn().Err(err).Str("role", string(in.Role)).Msg("invitation email not delivered")
		return nil, fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(in.Role)).Msg("user invited")
	return user, nil
}

func (s *AuthService) discardPlaceholder(ctx context.Context, userID string) {
	if err := s.users.Delete(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to remove invited placeholder")
	}
}

func (s *AuthService) AcceptInvite(ctx context.Context, in ports.AcceptInviteInput) (*domain.User, error) {
	user, err := s.recovery.Consume(ctx, domain.RecoveryInvite, in.Token, func(u *domain.User) (domain.UserChanges, error) {
		if !u.IsInvited {
			return domain.UserChanges{}, domain.ErrInvalidOrExpiredToken
		}
		hash, err := s.hash(in.Password)
		if err != nil {
			return domain.UserChanges{}, err
		}
		name := strings.TrimSpace(in.Name)
		accepted := false
		return domain.UserChanges{Name: &name, PasswordHash: &hash, IsInvited: &accepted}, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("invitation accepted")
	return user, nil
}

func (s *AuthService) session(user *domain.User) (*ports.Session, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.Session{User: user, Token: token}, nil
}

func (s *AuthService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.HashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
