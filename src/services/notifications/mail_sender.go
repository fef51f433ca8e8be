package notifications

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"Backend-FormReview/src/config"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewSMTPSender fails when any SMTP setting is missing.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	missing := []string{}
	if cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if cfg.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if cfg.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %s", strings.Join(missing, ", "))
	}
	return &SMTPSender{Host: cfg.Host, Port: cfg.Port, User: cfg.User, Pass: cfg.Pass, From: cfg.From}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}
