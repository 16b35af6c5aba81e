package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends the verification code through a plain SMTP relay using
// AUTH PLAIN when credentials are configured.
type SMTPMailer struct {
	Addr     string // host:port
	From     string
	Username string
	Password string
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, address, displayName, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildVerificationMessage(m.From, address, displayName, code)

	var auth smtp.Auth
	if m.Username != "" {
		host := m.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.Username, m.Password, host)
	}

	if err := smtp.SendMail(m.Addr, auth, m.From, []string{address}, msg); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}
	return nil
}

func buildVerificationMessage(from, to, displayName, code string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your verification code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", displayName)
	fmt.Fprintf(&b, "Your verification code is %s. It expires in 10 minutes.\r\n", code)
	return []byte(b.String())
}
