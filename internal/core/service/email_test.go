package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
)

func TestEmailComposer_ResetPassword(t *testing.T) {
	settings := &memSettings{s: &domain.Settings{
		SiteName:     "NJR EXIM",
		ContactEmail: "help@example.com",
		Address:      "1 Harbour Rd",
		City:         "Chennai",
		Pincode:      "600001",
		Country:      "India",
	}}
	c := NewEmailComposer(settings, "https://site.example.com/")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	msg, err := c.ResetPassword(context.Background(), &domain.User{Name: "<Alice>", Email: "alice@example.com"}, "tok123", 10*time.Minute)
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if msg.To != "alice@example.com" || msg.Subject != "Password Reset Request" {
		t.Fatalf("unexpected headers: %+v", msg)
	}
	for _, want := range []string{
		"https://site.example.com/admin/reset-password/tok123",
		"&copy; 2026 NJR EXIM",
		"1 Harbour Rd, Chennai 600001, India",
		"mailto:help@example.com",
		"&lt;Alice&gt;",
	} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if !strings.Contains(msg.TextBody, "10 minutes") {
		t.Errorf("text body missing expiry: %q", msg.TextBody)
	}
}

func TestEmailComposer_FallsBackWithoutSettings(t *testing.T) {
	c := NewEmailComposer(&memSettings{}, "https://site.example.com")

	msg, err := c.Invitation(context.Background(), "new@example.com", domain.RoleAdmin, "Root", "tok", 24*time.Hour)
	if err != nil {
		t.Fatalf("Invitation: %v", err)
	}
	if !strings.Contains(msg.HTMLBody, domain.DefaultSiteName) || !strings.Contains(msg.HTMLBody, "contact@njrexim.com") {
		t.Fatal("expected default branding")
	}
	if !strings.Contains(msg.TextBody, "as admin") || !strings.Contains(msg.TextBody, "24 hours") {
		t.Fatalf("unexpected text body: %q", msg.TextBody)
	}
}
