package notifications

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// SMTPServiceImpl implements domain.MailService over SMTP.
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	host   string
	from   string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from string) domain.MailService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		host:   host,
		from:   from,
	}
}

// Send implements domain.MailService. Delivery failures are surfaced as a
// DeliveryError; nothing is retried here.
func (s *SMTPServiceImpl) Send(to, subject, body string) error {
	// If SMTP is not configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return &domain.DeliveryError{To: to, Err: err}
	}

	return nil
}
