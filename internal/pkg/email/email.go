package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Mailer defines the interface for outbound portal mail. Delivery is
// best-effort everywhere: callers log a returned error and carry on,
// a failed send never aborts the state change that triggered it.
type Mailer interface {
	Send(toEmail, subject, body string) error
	SendWelcomeEmail(toEmail, toName string) error
	SendApplicationEmail(toEmail, toName, companyName, role string) error
	SendShortlistEmail(toEmail, toName, companyName, role, jobID, round, status string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPMailer implements Mailer over net/smtp
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// Send delivers a plain-text email to a single recipient
func (m *SMTPMailer) Send(toEmail, subject, body string) error {
	// If username or password is empty, log the email instead (for development only)
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	auth := smtp.PlainAuth(
		"",
		m.config.Username,
		m.config.Password,
		m.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)

	err := smtp.SendMail(
		serverAddress,
		auth,
		m.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendWelcomeEmail confirms a successful registration
func (m *SMTPMailer) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Registration Successful - Placement Portal"

	body := fmt.Sprintf(`Hi %s,

You have successfully registered on the Placement Cell Management System.

You can now log in using your credentials and start applying to companies that match your profile.

Best wishes,
Placement Team
`, toName)

	return m.Send(toEmail, subject, body)
}

// SendApplicationEmail confirms a submitted application
func (m *SMTPMailer) SendApplicationEmail(toEmail, toName, companyName, role string) error {
	subject := fmt.Sprintf("Application Submitted - %s", companyName)

	body := fmt.Sprintf(`Hi %s,

You have successfully applied to %s for the role of %s.

We wish you the best for the recruitment process!

Regards,
Placement Cell Team
`, toName, companyName, role)

	return m.Send(toEmail, subject, body)
}

// SendShortlistEmail notifies a student about a shortlist or selection.
// status is either "shortlisted" or "selected".
func (m *SMTPMailer) SendShortlistEmail(toEmail, toName, companyName, role, jobID, round, status string) error {
	subject := fmt.Sprintf("You have been %s - %s (%s)", status, companyName, round)

	body := fmt.Sprintf(`Hello %s,

Congratulations! You have been %s for the following opportunity:

Company: %s
Role: %s
Job ID: %s
Round: %s

Please stay updated for the next steps.

Best regards,
Placement Cell
`, toName, status, companyName, role, jobID, round)

	return m.Send(toEmail, subject, body)
}
