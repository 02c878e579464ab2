// Package mailer sends transactional email. Delivery is always best-effort:
// callers log failures and move on, they never fail a request over mail.
package mailer

import (
	"log"

	"kalyanamaalai/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(to, subject, text, html string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP builds a gomail-backed mailer from config.
func NewSMTP(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) Send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Kalyanamaalai")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{}

// NewLog returns a mailer that only logs. Used when SMTP is not configured.
func NewLog() Mailer {
	return logMailer{}
}

func (logMailer) Send(to, subject, _, _ string) error {
	log.Printf("mail disabled, would send %q to %s", subject, to)
	return nil
}

// FromEnv returns the SMTP mailer when a host is configured, the log mailer
// otherwise.
func FromEnv() Mailer {
	cfg := config.SMTP()
	if cfg.Host == "" {
		return NewLog()
	}
	return NewSMTP(cfg)
}
