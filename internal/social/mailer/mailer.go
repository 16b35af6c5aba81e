package mailer

import (
	"context"
	"log/slog"
)

// Mailer delivers transactional mail. The only message this service sends is
// the email verification code.
type Mailer interface {
	SendVerificationCode(ctx context.Context, address, displayName, code string) error
}

// LogMailer writes the code to the log instead of sending mail. Used in dev
// and tests where no SMTP relay is available.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendVerificationCode(ctx context.Context, address, displayName, code string) error {
	m.Logger.Info("verification code issued",
		"to", address,
		"name", displayName,
		"code", code,
	)
	return nil
}
