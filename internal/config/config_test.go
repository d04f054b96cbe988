package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SMTP_PORT", "2525")

	var cfg Config
	require.NoError(t, applyEnvOverrides(&cfg))

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestApplyEnvOverridesBadInteger(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	var cfg Config
	err := applyEnvOverrides(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
}

func TestAccessTokenDuration(t *testing.T) {
	var cfg Config
	cfg.JWT.AccessTokenExpiration = "30m"
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenDuration())

	cfg.JWT.AccessTokenExpiration = "bogus"
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenDuration())
}
