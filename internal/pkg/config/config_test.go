//go:build unit

package config_test

import (
	"testing"
	"time"

	"leather-sandals-store/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, config.NewTestConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantMsg string
	}{
		{name: "short secret", mutate: func(c *config.Config) { c.JWT.Secret = "kisa" }, wantMsg: "JWT_SECRET"},
		{name: "zero window", mutate: func(c *config.Config) { c.RateLimit.Window = 0 }, wantMsg: "RATE_LIMIT_WINDOW"},
		{
			name: "session outlives persisted state",
			mutate: func(c *config.Config) {
				c.Checkout.SessionTTL = 48 * time.Hour
				c.Checkout.PersistTTL = time.Hour
			},
			wantMsg: "CHECKOUT_SESSION_TTL",
		},
		{name: "unsupported locale", mutate: func(c *config.Config) { c.Locale.Default = "de" }, wantMsg: "LOCALE_DEFAULT"},
		{name: "pool bounds", mutate: func(c *config.Config) { c.DB.MinConns = 50 }, wantMsg: "DB_MIN_CONNS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBuildDSNEscapes(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.DB.Password = "p@ss:word"

	assert.Contains(t, cfg.DB.BuildDSN(), "p%40ss%3Aword")
	assert.Contains(t, cfg.DB.BuildDSN(), "timezone=Europe%2FIstanbul")
}
