package mailer

import (
	"fmt"

	"files-manager/internal/domain"

	"gopkg.in/gomail.v2"
)

// SMTPMailer implements domain.Mailer over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
	logger domain.Logger
}

// NewSMTPMailer creates a mailer that delivers through the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, sender string, logger domain.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
		logger: logger,
	}
}

// Send delivers a single HTML mail.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	m.logger.Debug("Mail sent", "to", to, "subject", subject)
	return nil
}
