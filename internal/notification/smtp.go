package notification

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/HarshAvichal/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SMTPMailer delivers HTML mail over SMTP. With no host configured it runs
// disabled and logs what it would have sent, which keeps local development
// working without a mail account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, username, password, from string, log logger.Logger) *SMTPMailer {
	if host == "" {
		log.Warn("smtp host is empty, outgoing email disabled")
		return &SMTPMailer{from: from, logger: log}
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: log,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.dialer == nil {
		m.logger.Debug("email skipped (mailer disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "EventEase Team")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
