// Package mailer sends the contact-form notification email. The feature is
// optional: without both EMAIL_USER and EMAIL_PASS the mailer reports
// itself unconfigured and no send is ever attempted.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultRecipient = "dineshedine007@gamil.com"

type Mailer struct {
	Host      string
	Port      string
	User      string
	Password  string
	Recipient string
}

func NewFromEnv() *Mailer {
	m := &Mailer{
		Host:      os.Getenv("SMTP_HOST"),
		Port:      os.Getenv("SMTP_PORT"),
		User:      os.Getenv("EMAIL_USER"),
		Password:  os.Getenv("EMAIL_PASS"),
		Recipient: os.Getenv("TO_EMAIL"),
	}

	if m.Host == "" {
		m.Host = "smtp.gmail.com"
	}
	if m.Port == "" {
		m.Port = "587"
	}
	if m.Recipient == "" {
		m.Recipient = defaultRecipient
	}

	return m
}

func (m *Mailer) IsConfigured() bool {
	return m.User != "" && m.Password != ""
}

// SendContactEmail delivers one contact submission to the portfolio owner.
// Callers must check IsConfigured first.
func (m *Mailer) SendContactEmail(name, email, message string, submittedAt time.Time) error {
	if !m.IsConfigured() {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: Message from %s", name)
	body := buildHTMLBody(name, email, message, submittedAt)

	msg := []byte("To: " + m.Recipient + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Password, m.Host)

	err := smtp.SendMail(m.Host+":"+m.Port, auth, m.User, []string{m.Recipient}, msg)
	if err != nil {
		logrus.Errorf("[MAILER] Error sending email: %v", err)
		return err
	}

	logrus.Infof("[MAILER] Email sent successfully to %s", m.Recipient)
	return nil
}

func buildHTMLBody(name, email, message string, submittedAt time.Time) string {
	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2 style="color: #2563eb; border-bottom: 2px solid #e5e7eb; padding-bottom: 10px;">
			New Contact Form Submission
		</h2>

		<div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
			<h3 style="margin-top: 0; color: #1f2937;">Contact Details:</h3>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Submitted:</strong> %s</p>
		</div>

		<div style="background-color: #ffffff; padding: 15px; border-left: 4px solid #2563eb; margin: 20px 0;">
			<h3 style="margin-top: 0; color: #1f2937;">Message:</h3>
			<p style="white-space: pre-wrap;">%s</p>
		</div>

		<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; font-size: 14px; color: #6b7280;">
			<p>This message was sent from your portfolio website contact form.</p>
			<p>Reply directly to this email to respond to %s.</p>
		</div>
	</div>
</body>
</html>
`, name, email, submittedAt.UTC().Format("2006-01-02 15:04:05 UTC"), message, name)
}
