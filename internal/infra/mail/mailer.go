// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"arena/config"
	"arena/internal/domain/service"
	"arena/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// resetMailer implements the ResetMailer interface over SMTP.
// With no SMTP host configured it degrades to logging the reset link, which
// is the intended behaviour for local development.
type resetMailer struct {
	client       *gomail.Client
	from         string
	resetBaseURL string
	resetTTL     time.Duration
	logger       *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config       *config.Config
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewResetMailer is the constructor for resetMailer.
func NewResetMailer(params Params) (service.ResetMailer, error) {
	mailer := &resetMailer{
		resetTTL: params.TokenService.ResetTokenTTL(),
		logger:   params.Logger,
	}

	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Warn("No SMTP host configured, reset links will only be logged")

		return mailer, nil
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	mailer.client = client
	mailer.from = cfg.From
	mailer.resetBaseURL = cfg.ResetBaseURL

	return mailer, nil
}

// SendPasswordReset sends the reset link for the given token to the address.
func (m *resetMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	link := m.resetLink(token)

	if m.client == nil {
		m.logger.Info("Password reset link issued", slog.String("link", link))

		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "failed to set mail recipient")
	}

	msg.Subject("Reset your password")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below within %s to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		formatValidity(m.resetTTL), link))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}

	return nil
}

// formatValidity renders the reset-token lifetime in words. The link is only
// good for as long as the token service says, however that is configured.
func formatValidity(ttl time.Duration) string {
	switch {
	case ttl >= time.Hour:
		hours := int(ttl.Round(time.Hour).Hours())
		if hours == 1 {
			return "1 hour"
		}

		return fmt.Sprintf("%d hours", hours)
	default:
		minutes := int(ttl.Round(time.Minute).Minutes())
		if minutes <= 1 {
			return "1 minute"
		}

		return fmt.Sprintf("%d minutes", minutes)
	}
}

// resetLink builds the link the player follows to complete the flow.
func (m *resetMailer) resetLink(token string) string {
	base := m.resetBaseURL
	if base == "" {
		base = "http://localhost:3000/reset-password"
	}

	return base + "?token=" + url.QueryEscape(token)
}
