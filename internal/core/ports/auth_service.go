package ports

import (
	"context"

	"github.com/njrexim/cms-api/internal/core/domain"
)

// Session is a user together with a freshly issued bearer token.
type Session struct {
	User  *domain.User
	Token string
}

type SetupInput struct {
	Name     string
	Email    string
	Password string
}

type InviteInput struct {
	Email     string
	Role      domain.Role
	InvitedBy *domain.User
}

type AcceptInviteInput struct {
	Token    string
	Name     string
	Password string
}

type ProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthService covers authentication and credential recovery.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Setup(ctx context.Context, in SetupInput) (*Session, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*Session, error)
	Invite(ctx context.Context, in InviteInput) (*domain.User, error)
	AcceptInvite(ctx context.Context, in AcceptInviteInput) (*domain.User, error)
}

type UserUpdateInput struct {
	Name  *string
	Email *string
	Role  *domain.Role
}

// UserService is the super-admin management surface.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
