package handler

import (
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type setupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type profileRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=admin super-admin"`
}

type acceptInviteRequest struct {
	Token    string `json:"token"    validate:"required"`
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type updateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,oneof=admin super-admin"`
}

// userResponse is the public view of a user account.
type userResponse struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IsInvited bool        `json:"isInvited,omitempty"`
	CreatedAt time.Time   `json:"createdAt,omitzero"`
}

// sessionResponse is returned by every call that issues a bearer token.
type sessionResponse struct {
	userResponse
	Token string `json:"token"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsInvited: u.IsInvited,
		CreatedAt: u.CreatedAt,
	}
}

func toSessionResponse(s *ports.Session) sessionResponse {
	return sessionResponse{userResponse: toUserResponse(s.User), Token: s.Token}
}
