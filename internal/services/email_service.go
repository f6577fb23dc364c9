package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"freelancehub/internal/config"
	"freelancehub/pkg/logger"
)

type EmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type smtpEmailService struct {
	config *config.SMTPConfig
	logger *logger.Logger
}

func NewSMTPEmailService(cfg *config.SMTPConfig, log *logger.Logger) EmailService {
	return &smtpEmailService{
		config: cfg,
		logger: log,
	}
}

func (s *smtpEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	msg := s.buildMessage(to, subject, body)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.logger.WithField("to", to).Info("email sent")

	return nil
}

func (s *smtpEmailService) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
