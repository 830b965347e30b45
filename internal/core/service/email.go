package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

var emailLayout = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f6f9; color: #333333; }
.container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; }
.header { background-color: #003B95; padding: 30px 20px; text-align: center; }
.header h1 { color: #ffffff; margin: 0; font-size: 24px; letter-spacing: 1px; }
.content { padding: 40px 30px; line-height: 1.6; font-size: 16px; }
.button { display: inline-block; padding: 12px 24px; background-color: #003B95; color: #ffffff !important; text-decoration: none; border-radius: 4px; font-weight: bold; margin: 20px 0; }
.footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; border-top: 1px solid #eaeaea; }
.footer a { color: #003B95; text-decoration: none; }
</style>
</head>
<body>
<div style="padding: 20px 0;">
<div class="container">
<div class="header"><h1>{{.Company}}</h1></div>
<div class="content">
<h1>{{.Title}}</h1>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{if .ActionURL}}<a class="button" href="{{.ActionURL}}">{{.ActionLabel}}</a>
<p>If the button does not work, copy this link into your browser:<br>{{.ActionURL}}</p>
{{end}}</div>
<div class="footer">
<p>&copy; {{.Year}} {{.Company}}. All rights reserved.</p>
<p>{{.Address}}</p>
<p><a href="{{.Website}}">Visit Website</a> | <a href="mailto:{{.Contact}}">Contact Support</a></p>
</div>
</div>
</div>
</body>
</html>`))

// emailContent is the per-message part of an outbound email.
type emailContent struct {
	Subject     string
	Title       string
	Paragraphs  []string
	ActionURL   string
	ActionLabel string
}

// EmailComposer wraps message content in the branded layout, reading the
// company name, address and contact email from site settings.
type EmailComposer struct {
	settings  ports.SettingsRepository
	clientURL string
	now       func() time.Time
}

func NewEmailComposer(settings ports.SettingsRepository, clientURL string) *EmailComposer {
	return &EmailComposer{settings: settings, clientURL: strings.TrimRight(clientURL, "/"), now: time.Now}
}

// Link joins a path onto the public site URL.
func (e *EmailComposer) Link(path string) string {
	return e.clientURL + path
}

func (e *EmailComposer) compose(ctx context.Context, to string, c emailContent) (ports.EmailMessage, error) {
	brand := e.branding(ctx)

	data := struct {
		emailContent
		Company string
		Address string
		Website string
		Contact string
		Year    int
	}{
		emailContent: c,
		Company:      brand.SiteName,
		Address:      brandAddress(brand),
		Website:      e.clientURL,
		Contact:      brandContact(brand),
		Year:         e.now().Year(),
	}

	var html bytes.Buffer
	if err := emailLayout.Execute(&html, data); err != nil {
		return ports.EmailMessage{}, fmt.Errorf("render email: %w", err)
	}

	text := strings.Join(c.Paragraphs, "\n\n")
	if c.ActionURL != "" {
		text += "\n\n" + c.ActionLabel + ": " + c.ActionURL
	}

	return ports.EmailMessage{
		To:       to,
		Subject:  c.Subject,
		HTMLBody: html.String(),
		TextBody: text,
	}, nil
}

// branding never fails; a missing or unreadable settings document falls back
// to defaults so that account emails still go out.
func (e *EmailComposer) branding(ctx context.Context) domain.Settings {
	s, err := e.settings.Get(ctx)
	if err != nil || s == nil {
		return domain.Settings{SiteName: domain.DefaultSiteName}
	}
	out := *s
	if out.SiteName == "" {
		out.SiteName = domain.DefaultSiteName
	}
	return out
}

func brandAddress(s domain.Settings) string {
	if s.Address == "" {
		return "Your Trusted Export Import Partner"
	}
	return strings.Join(strings.Fields(fmt.Sprintf("%s, %s %s, %s", s.Address, s.City, s.Pincode, s.Country)), " ")
}

func brandContact(s domain.Settings) string {
	if s.ContactEmail == "" {
		return "contact@njrexim.com"
	}
	return s.ContactEmail
}

// ResetPassword builds the password reset email.
func (e *EmailComposer) ResetPassword(ctx context.Context, user *domain.User, token string, ttl time.Duration) (ports.EmailMessage, error) {
	return e.compose(ctx, user.Email, emailContent{
		Subject: "Password Reset Request",
		Title:   "Reset your password",
		Paragraphs: []string{
			fmt.Sprintf("Hello %s,", user.Name),
			"You are receiving this email because a password reset was requested for your account.",
			fmt.Sprintf("This link expires in %s. If you did not request a reset, you can ignore this email.", humanDuration(ttl)),
		},
		ActionURL:   e.Link("/admin/reset-password/" + token),
		ActionLabel: "Reset Password",
	})
}

// Invitation builds the admin invitation email.
func (e *EmailComposer) Invitation(ctx context.Context, email string, role domain.Role, inviter string, token string, ttl time.Duration) (ports.EmailMessage, error) {
	return e.compose(ctx, email, emailContent{
		Subject: "You have been invited to the admin panel",
		Title:   "You're invited",
		Paragraphs: []string{
			fmt.Sprintf("%s has invited you to join the admin panel as %s.", inviter, role),
			fmt.Sprintf("Accept the invitation within %s to set your name and password.", humanDuration(ttl)),
		},
		ActionURL:   e.Link("/admin/accept-invite/" + token),
		ActionLabel: "Accept Invitation",
	})
}

// NewInquiry builds the staff notification for a contact-form submission.
// It returns an error when no contact email is configured.
func (e *EmailComposer) NewInquiry(ctx context.Context, inq domain.Inquiry) (ports.EmailMessage, error) {
	brand := e.branding(ctx)
	if brand.ContactEmail == "" {
		return ports.EmailMessage{}, errors.New("no contact email configured")
	}
	subject := inq.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	return e.compose(ctx, brand.ContactEmail, emailContent{
		Subject: "New inquiry: " + subject,
		Title:   "New website inquiry",
		Paragraphs: []string{
			fmt.Sprintf("From: %s <%s> %s", inq.Name, inq.Email, inq.Phone),
			"Subject: " + subject,
			inq.Message,
		},
		ActionURL:   e.Link("/admin/inquiries"),
		ActionLabel: "Open Inquiries",
	})
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d >= time.Minute && d%time.Minute == 0:
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	default:
		return d.String()
	}
}
