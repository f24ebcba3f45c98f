package mail

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/service"
)

// logMailer writes action links to the log instead of sending them. It stands in for SMTP in
// development, where the link is copied from the console.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that only logs.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Verification email",
		slog.String("to", to),
		slog.String("name", name),
		slog.String("link", link),
	)

	return nil
}

func (m *logMailer) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Password reset email",
		slog.String("to", to),
		slog.String("link", link),
	)

	return nil
}
