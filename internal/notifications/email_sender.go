package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"aerobook/internal/shared/config"
	"aerobook/pkg/logger"
)

// EmailSender delivers a rendered notification email. The consumer is
// written against this interface so tests and broker-less environments
// can plug in the log sender.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends mail over plain SMTP with AUTH.
type SMTPSender struct {
	config config.EmailConfig
}

func NewSMTPSender(cfg config.EmailConfig) (*SMTPSender, error) {
	if cfg.SMTPHost == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	return &SMTPSender{config: cfg}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	msg := strings.Join([]string{
		"From: " + s.config.FromEmail,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogSender writes the email to the log instead of delivering it. Used
// when SMTP is not configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender() *LogSender {
	return &LogSender{logger: logger.GetDefault()}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "email notification (log sender)",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
