package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/linskybing/syncbridge-go/config"
)

// SendMail delivers a simple HTML mail through the configured SMTP
// relay. Overridable for tests.
var SendMail = func(recipients []string, subject, htmlBody string) error {
	if len(recipients) == 0 {
		return nil
	}

	addr := config.SmtpHost + ":" + config.SmtpPort
	msg := strings.Join([]string{
		"From: " + config.MailSender,
		"To: " + strings.Join(recipients, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		htmlBody,
	}, "\r\n")

	var auth smtp.Auth
	if config.SmtpUser != "" {
		auth = smtp.PlainAuth("", config.SmtpUser, config.SmtpPass, config.SmtpHost)
	}

	if err := smtp.SendMail(addr, auth, config.MailSender, recipients, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
