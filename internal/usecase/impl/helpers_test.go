package impl

import (
	"io"
	"log/slog"
	"time"

	"vouch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Tokens: &config.TokensConfig{
			EmailVerificationTTL: 24 * time.Hour,
			PasswordResetTTL:     time.Hour,
			Retention:            48 * time.Hour,
			BaseURL:              "https://vouch.test",
		},
	}
}
