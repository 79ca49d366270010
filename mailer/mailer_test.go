package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")
	t.Setenv("TO_EMAIL", "")

	m := NewFromEnv()

	assert.Equal(t, "smtp.gmail.com", m.Host)
	assert.Equal(t, "587", m.Port)
	assert.Equal(t, defaultRecipient, m.Recipient)
	assert.False(t, m.IsConfigured())
}

func TestIsConfiguredNeedsBothCredentials(t *testing.T) {
	assert.False(t, (&Mailer{User: "owner@example.com"}).IsConfigured())
	assert.False(t, (&Mailer{Password: "app-password"}).IsConfigured())
	assert.True(t, (&Mailer{User: "owner@example.com", Password: "app-password"}).IsConfigured())
}

func TestSendContactEmailRefusesUnconfigured(t *testing.T) {
	err := (&Mailer{}).SendContactEmail("A", "a@b.co", "hello there, testing", time.Now())
	assert.Error(t, err)
}

func TestBuildHTMLBody(t *testing.T) {
	at := time.Date(2025, 8, 30, 9, 30, 0, 0, time.UTC)
	body := buildHTMLBody("Visitor", "visitor@example.com", "A question about a project.", at)

	assert.Contains(t, body, "Visitor")
	assert.Contains(t, body, "visitor@example.com")
	assert.Contains(t, body, "A question about a project.")
	assert.Contains(t, body, "2025-08-30 09:30:00 UTC")
}
