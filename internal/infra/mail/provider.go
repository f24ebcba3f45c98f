// Package mail delivers the transactional emails carrying verification and password reset links.
package mail

import (
	"log/slog"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the configured mail provider, logging links when none is set.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		params.Logger.Info("Using log mailer, action links are written to the log")

		return NewLogMailer(params.Logger), nil
	}

	switch cfg.Provider {
	case constants.MailProviderSMTP:
		if cfg.Host == "" || cfg.FromAddress == "" {
			return nil, errors.New("mail host and fromAddress are required for the smtp provider")
		}

		return NewSMTPMailer(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
