package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type Service interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config holds SMTP settings. An empty Host selects the logging sender.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewService returns an SMTP sender, or a sender that only logs when no host
// is configured.
func NewService(cfg Config) Service {
	if cfg.Host == "" {
		return logService{}
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &smtpService{
		from: cfg.From,
		send: func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

type smtpService struct {
	from string
	send func(m *gomail.Message) error
}

func (s *smtpService) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

type logService struct{}

func (logService) Send(_ context.Context, to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("smtp not configured, email skipped")
	return nil
}
