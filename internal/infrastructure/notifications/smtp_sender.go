package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/placewise/backend/internal/domain/providers"
	"github.com/placewise/backend/pkg/config"
	"github.com/placewise/backend/pkg/retry"
)

// SMTPSender delivers plain-text mail over SMTP with a small retry budget
// for transient failures.
type SMTPSender struct {
	cfg   config.SMTPConfig
	retry retry.Config

	// send is swappable in tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg config.SMTPConfig) (providers.EmailSender, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("SMTP_HOST must be set")
	}

	return &SMTPSender{
		cfg:   cfg,
		retry: retry.DefaultConfig(),
		send:  smtp.SendMail,
	}, nil
}

// Send delivers a plain-text message to a single recipient
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	payload := []byte(msg.String())
	return retry.Do(ctx, s.retry, func() error {
		return s.send(s.cfg.Addr(), auth, s.cfg.From, []string{to}, payload)
	})
}
