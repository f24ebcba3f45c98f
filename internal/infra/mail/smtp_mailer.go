package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/service"

	"gopkg.in/gomail.v2"
)

var (
	verificationTemplate = template.Must(template.New("verify").Parse(`<html>
<body>
	<h2>Welcome to the canteen, {{.Name}}!</h2>
	<p>Please verify your email address by clicking the link below:</p>
	<p><a href="{{.Link}}">Verify Email Address</a></p>
	<p>If you didn't create an account, please ignore this email.</p>
</body>
</html>`))

	resetTemplate = template.Must(template.New("reset").Parse(`<html>
<body>
	<h2>Password Reset Request</h2>
	<p>Click the link below to choose a new password:</p>
	<p><a href="{{.Link}}">Reset Password</a></p>
	<p>If you didn't request a password reset, please ignore this email.</p>
</body>
</html>`))
)

// dialer is the part of *gomail.Dialer the mailer uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer      dialer
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

// NewSMTPMailer delivers emails through the configured SMTP relay.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		dialer:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      logger,
	}
}

func (m *smtpMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	plain := fmt.Sprintf("Welcome to the canteen, %s!\n\nPlease verify your email address by visiting:\n%s\n\nIf you didn't create an account, please ignore this email.\n", name, link)

	return m.send(ctx, to, "Verify your email address", plain, verificationTemplate, map[string]string{"Name": name, "Link": link})
}

func (m *smtpMailer) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	plain := fmt.Sprintf("Password Reset Request\n\nVisit the following URL to choose a new password:\n%s\n\nIf you didn't request a password reset, please ignore this email.\n", link)

	return m.send(ctx, to, "Reset your password", plain, resetTemplate, map[string]string{"Link": link})
}

func (m *smtpMailer) send(ctx context.Context, to, subject, plain string, tmpl *template.Template, data map[string]string) error {
	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddress, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plain)
	msg.AddAlternative("text/html", html.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Email sent", slog.String("subject", subject))

	return nil
}
