package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"arena/config"
	mockSvc "arena/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetMailer_LogsLinkWithoutSMTPHost(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ResetTokenTTL().Return(24 * time.Hour)

	mailer, err := NewResetMailer(Params{Config: &config.Config{}, TokenService: tokenSvc, Logger: logger})
	require.NoError(t, err)

	err = mailer.SendPasswordReset(context.Background(), "player@example.com", "some.reset.token")
	require.NoError(t, err)

	// Dev mode: nothing is sent, the link lands in the log instead.
	assert.Contains(t, buf.String(), "some.reset.token")
}

func TestResetMailer_ResetLink(t *testing.T) {
	mailer := &resetMailer{resetBaseURL: "https://game.example.com/reset-password"}

	link := mailer.resetLink("token+with/specials")
	assert.Equal(t, "https://game.example.com/reset-password?token=token%2Bwith%2Fspecials", link)

	fallback := &resetMailer{}
	assert.Equal(t, "http://localhost:3000/reset-password?token=abc", fallback.resetLink("abc"))
}

func TestResetMailer_FormatValidity(t *testing.T) {
	// The mail body must quote whatever lifetime the token service is
	// configured with, not a fixed number.
	assert.Equal(t, "24 hours", formatValidity(24*time.Hour))
	assert.Equal(t, "1 hour", formatValidity(time.Hour))
	assert.Equal(t, "45 minutes", formatValidity(45*time.Minute))
	assert.Equal(t, "1 minute", formatValidity(30*time.Second))
}
