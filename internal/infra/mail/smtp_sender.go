// Package mail delivers verification and password reset emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// smtpSender implements service.MailSender over plain SMTP with AUTH.
type smtpSender struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger

	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Params holds dependencies for MailSender, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an SMTP-backed MailSender from configuration.
func New(params Params) (service.MailSender, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("mail host and from address are required")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:   auth,
		from:   cfg.From,
		logger: params.Logger,
		send:   smtp.SendMail,
	}, nil
}

// Send delivers a single plain-text message. SMTP has no native context
// support, so the send runs in a goroutine and the caller's context can
// abandon it.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- s.send(s.addr, s.auth, s.from, []string{to}, msg)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail send abandoned")
	case err := <-done:
		if err != nil {
			return errors.Wrapf(err, "failed to send mail to %s", to)
		}

		s.logger.Info("Mail sent",
			slog.String("to", to),
			slog.String("subject", subject),
		)

		return nil
	}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
