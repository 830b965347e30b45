package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type authFixture struct {
	users    *memUsers
	mailer   *stubMailer
	tokens   *TokenService
	recovery *RecoveryTokens
	svc      *AuthService
}

func newAuthFixture() *authFixture {
	users := newMemUsers()
	mailer := &stubMailer{}
	tokens := NewTokenService("0123456789abcdef", time.Hour)
	recovery := NewRecoveryTokens(users, 10*time.Minute, 24*time.Hour)
	emails := NewEmailComposer(&memSettings{}, "https://site.example.com")
	svc := NewAuthService(users, tokens, recovery, mailer, emails, AuthOptions{
		ResetTTL:  10 * time.Minute,
		InviteTTL: 24 * time.Hour,
		HashCost:  bcrypt.MinCost,
	}, nopLog)
	return &authFixture{users: users, mailer: mailer, tokens: tokens, recovery: recovery, svc: svc}
}

// linkToken extracts the plaintext token from the last email's action link.
func (f *authFixture) linkToken(t *testing.T) string {
	t.Helper()
	text := f.mailer.last().TextBody
	i := strings.LastIndex(text, "/")
	if i < 0 {
		t.Fatalf("no link in email: %q", text)
	}
	return strings.TrimSpace(text[i+1:])
}

func (f *authFixture) seed(t *testing.T, name, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return seedUser(t, f.users, domain.User{Name: name, Email: email, PasswordHash: string(hash), Role: role})
}

func TestAuthService_Setup_OnlyOnce(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	session, err := f.svc.Setup(ctx, ports.SetupInput{Name: " Root ", Email: "Root@Example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if session.User.Role != domain.RoleSuperAdmin || session.User.Email != "root@example.com" || session.User.Name != "Root" {
		t.Fatalf("unexpected user: %+v", session.User)
	}
	if sub, err := f.tokens.Verify(session.Token); err != nil || sub != session.User.ID {
		t.Fatalf("token does not verify to the new user: %v %q", err, sub)
	}

	_, err = f.svc.Setup(ctx, ports.SetupInput{Name: "Other", Email: "other@example.com", Password: "password1"})
	if !errors.Is(err, domain.ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	if n, _ := f.users.CountByRole(ctx, domain.RoleSuperAdmin); n != 1 {
		t.Fatalf("expected exactly one super admin, got %d", n)
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture()
	u := f.seed(t, "Alice", "alice@example.com", "secret12", domain.RoleAdmin)

	session, err := f.svc.Login(context.Background(), " ALICE@example.com ", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.User.ID != u.ID || session.Token == "" {
		t.Fatalf("unexpected session: %+v", session)
	}

	for _, tc := range []struct{ email, password string }{
		{"alice@example.com", "wrong"},
		{"nobody@example.com", "secret12"},
		{"", ""},
	} {
		if _, err := f.svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s/%s: expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_Login_InvitedAccountCannotLogIn(t *testing.T) {
	f := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret12"), bcrypt.MinCost)
	seedUser(t, f.users, domain.User{Email: "inv@example.com", PasswordHash: string(hash), Role: domain.RoleAdmin, IsInvited: true})

	if _, err := f.svc.Login(context.Background(), "inv@example.com", "secret12"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ForgotAndResetPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	u := f.seed(t, "Alice", "alice@example.com", "oldpassword", domain.RoleAdmin)

	if err := f.svc.ForgotPassword(ctx, "alice@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	msg := f.mailer.last()
	if msg.To != "alice@example.com" || !strings.Contains(msg.HTMLBody, "/admin/reset-password/") {
		t.Fatalf("unexpected email: %+v", msg)
	}
	token := f.linkToken(t)

	session, err := f.svc.ResetPassword(ctx, token, "newpassword")
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if session.User.ID != u.ID || session.Token == "" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if _, err := f.svc.Login(ctx, "alice@example.com", "newpassword"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	if _, err := f.svc.ResetPassword(ctx, token, "thirdpassword"); !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("reused token: expected ErrInvalidOrExpiredToken, got %v", err)
	}
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	f := newAuthFixture()
	if err := f.svc.ForgotPassword(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(f.mailer.sent) != 0 {
		t.Fatal("no email may be sent for an unknown account")
	}
}

func TestAuthService_ForgotPassword_MailFailureRevokesToken(t *testing.T) {
	f := newAuthFixture()
	u := f.seed(t, "Alice", "alice@example.com", "oldpassword", domain.RoleAdmin)
	f.mailer.err = errBoom

	err := f.svc.ForgotPassword(context.Background(), "alice@example.com")
	if !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}
	if f.users.get(u.ID).Reset != nil {
		t.Fatal("reset token must be revoked when delivery fails")
	}
}

func TestAuthService_Invite_AndAccept(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	root := f.seed(t, "Root", "root@example.com", "password1", domain.RoleSuperAdmin)

	invited, err := f.svc.Invite(ctx, ports.InviteInput{Email: "New@Example.com", Role: domain.RoleAdmin, InvitedBy: root})
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if !invited.IsInvited || invited.Email != "new@example.com" || invited.Role != domain.RoleAdmin {
		t.Fatalf("unexpected placeholder: %+v", invited)
	}
	msg := f.mailer.last()
	if msg.To != "new@example.com" || !strings.Contains(msg.TextBody, "Root has invited you") {
		t.Fatalf("unexpected email: %+v", msg)
	}
	token := f.linkToken(t)

	accepted, err := f.svc.AcceptInvite(ctx, ports.AcceptInviteInput{Token: token, Name: " Bob ", Password: "bobpassword"})
	if err != nil {
		t.Fatalf("AcceptInvite: %v", err)
	}
	if accepted.IsInvited || accepted.Name != "Bob" {
		t.Fatalf("unexpected account after accept: %+v", accepted)
	}
	if _, err := f.svc.Login(ctx, "new@example.com", "bobpassword"); err != nil {
		t.Fatalf("login after accept: %v", err)
	}

	_, err = f.svc.AcceptInvite(ctx, ports.AcceptInviteInput{Token: token, Name: "Eve", Password: "evepassword"})
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("reused invite: expected ErrInvalidOrExpiredToken, got %v", err)
	}
}

func TestAuthService_Invite_MailFailureRemovesPlaceholder(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.mailer.err = errBoom

	_, err := f.svc.Invite(ctx, ports.InviteInput{Email: "alice@example.com", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}
	if _, err := f.users.FindByEmail(ctx, "alice@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("placeholder must be removed, got %v", err)
	}

	// The address is free again once delivery works.
	f.mailer.err = nil
	invited, err := f.svc.Invite(ctx, ports.InviteInput{Email: "alice@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("second Invite: %v", err)
	}
	if !invited.IsInvited || invited.Email != "alice@example.com" {
		t.Fatalf("unexpected invited user: %+v", invited)
	}
	if got := f.mailer.last().To; got != "alice@example.com" {
		t.Fatalf("invitation sent to %q", got)
	}
}

func TestAuthService_PasswordTooLongForBcrypt(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Setup(ctx, ports.SetupInput{Name: "Root", Email: "root@example.com", Password: strings.Repeat("p", 80)})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Fields[0].Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
	if n, _ := f.users.CountByRole(ctx, domain.RoleSuperAdmin); n != 0 {
		t.Fatalf("no user may be created, got %d", n)
	}
}

func TestAuthService_Invite_ExistingEmail(t *testing.T) {
	f := newAuthFixture()
	f.seed(t, "Alice", "alice@example.com", "password1", domain.RoleAdmin)

	_, err := f.svc.Invite(context.Background(), ports.InviteInput{Email: "alice@example.com", Role: domain.RoleAdmin})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(f.mailer.sent) != 0 {
		t.Fatal("no invitation may be sent")
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	u := f.seed(t, "Alice", "alice@example.com", "password1", domain.RoleAdmin)
	f.seed(t, "Bob", "bob@example.com", "password1", domain.RoleAdmin)

	name, pass := "Alicia", "password2"
	session, err := f.svc.UpdateProfile(ctx, u.ID, ports.ProfileInput{Name: &name, Password: &pass})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if session.User.Name != "Alicia" || session.Token == "" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if _, err := f.svc.Login(ctx, "alice@example.com", "password2"); err != nil {
		t.Fatalf("login with updated password: %v", err)
	}

	taken := "BOB@example.com"
	if _, err := f.svc.UpdateProfile(ctx, u.ID, ports.ProfileInput{Email: &taken}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
