package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/backoffice-api/pkg/config"
)

// SMTPMailer delivers notification mails over SMTP. It satisfies the
// application's Mailer port; callers treat sends as fire-and-forget.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer builds the mail adapter.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one HTML mail. A new dialer per send keeps the adapter
// stateless; volume is a handful of credential mails, not a campaign.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("smtp: host not configured")
	}
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
