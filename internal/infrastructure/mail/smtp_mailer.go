package mail

import (
	"context"
	"errors"
	"fmt"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp host is not configured")

// dialer is the part of *gomail.Dialer used by the mailer.
type dialer interface {
	Dial() (gomail.SendCloser, error)
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends HTML email through the configured SMTP relay. The sender
// address is the SMTP user.
type SMTPMailer struct {
	dialer dialer
	from   string
	logger *zap.Logger
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	var d dialer
	if cfg.Host != "" {
		gd := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
		gd.SSL = cfg.Secure
		d = gd
	}
	return &SMTPMailer{dialer: d, from: cfg.User, logger: logger}
}

func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.Email) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error("[mail][smtp] send failed", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	m.logger.Info("[mail][smtp] email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// Verify opens and closes an authenticated SMTP session.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := m.dialer.Dial()
	if err != nil {
		m.logger.Error("[mail][smtp] connection check failed", zap.Error(err))
		return fmt.Errorf("smtp dial: %w", err)
	}
	if err := s.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	m.logger.Info("[mail][smtp] connection verified")
	return nil
}
