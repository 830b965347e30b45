package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the stored privilege level of a user. Unauthenticated callers carry
// RoleAnonymous, which is never persisted.
type Role string

const (
	RoleAnonymous  Role = ""
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// ParseRole accepts only the stored roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleAdmin, RoleSuperAdmin:
		return r, nil
	default:
		return RoleAnonymous, fmt.Errorf("%w: unknown role %q", ErrInvalidRole, s)
	}
}

// Capability is the minimum role an operation requires.
type Capability int

const (
	CapabilityAdmin Capability = iota + 1
	CapabilitySuperAdmin
)

func (c Capability) String() string {
	switch c {
	case CapabilityAdmin:
		return "admin"
	case CapabilitySuperAdmin:
		return "super admin"
	default:
		return "unknown"
	}
}

// Allows reports whether r satisfies capability c.
func (r Role) Allows(c Capability) bool {
	switch c {
	case CapabilityAdmin:
		return r == RoleAdmin || r == RoleSuperAdmin
	case CapabilitySuperAdmin:
		return r == RoleSuperAdmin
	default:
		return false
	}
}

// RecoveryKind selects which token/expiry pair on the user record a recovery
// token lives in.
type RecoveryKind int

const (
	RecoveryReset RecoveryKind = iota + 1
	RecoveryInvite
)

func (k RecoveryKind) String() string {
	switch k {
	case RecoveryReset:
		return "reset"
	case RecoveryInvite:
		return "invite"
	default:
		return "unknown"
	}
}

// RecoveryToken is the persisted half of a recovery token: the one-way hash
// and its absolute expiry. The two are always set or cleared together.
type RecoveryToken struct {
	Hash      string
	ExpiresAt time.Time
}

// User is an identity and credential record.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsInvited    bool      `json:"isInvited"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Reset  *RecoveryToken `json:"-"`
	Invite *RecoveryToken `json:"-"`
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserChanges is a partial update. Nil fields are left untouched.
type UserChanges struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
	IsInvited    *bool
}
