package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	// Arrange
	environ := map[string]string{"API_TOKEN": "secret"}

	// Act
	cfg, err := parse(nil, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", cfg.ServerAddress.String())
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedBookmarks)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, float64(0), cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestParse_FromEnvironment(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"API_TOKEN":        "secret",
		"SERVER_ADDRESS":   "0.0.0.0:9090",
		"APP_ENV":          "production",
		"LOG_LEVEL":        "warn",
		"SEED_BOOKMARKS":   "false",
		"SHUTDOWN_TIMEOUT": "10s",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "5",
	}

	// Act
	cfg, err := parse(nil, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, NetworkAddress{Host: "0.0.0.0", Port: 9090}, cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.SeedBookmarks)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
}

func TestParse_FlagsOverrideEnvironment(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"API_TOKEN":      "secret",
		"SERVER_ADDRESS": "localhost:9090",
		"APP_ENV":        "development",
	}
	args := []string{"-a", ":8080", "-env", "production", "-log-level", "debug"}

	// Act
	cfg, err := parse(args, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress.String())
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		args    []string
	}{
		{
			name:    "Missing API token",
			environ: map[string]string{},
		},
		{
			name:    "Empty API token",
			environ: map[string]string{"API_TOKEN": ""},
		},
		{
			name:    "Invalid address",
			environ: map[string]string{"API_TOKEN": "secret", "SERVER_ADDRESS": "localhost"},
		},
		{
			name:    "Invalid port",
			environ: map[string]string{"API_TOKEN": "secret", "SERVER_ADDRESS": "localhost:http"},
		},
		{
			name:    "Invalid environment",
			environ: map[string]string{"API_TOKEN": "secret", "APP_ENV": "staging"},
		},
		{
			name:    "Invalid log level",
			environ: map[string]string{"API_TOKEN": "secret", "LOG_LEVEL": "verbose"},
		},
		{
			name:    "Negative rate limit",
			environ: map[string]string{"API_TOKEN": "secret", "RATE_LIMIT_RPS": "-1"},
		},
		{
			name:    "Zero burst with rate limit",
			environ: map[string]string{"API_TOKEN": "secret", "RATE_LIMIT_RPS": "1", "RATE_LIMIT_BURST": "0"},
		},
		{
			name:    "Invalid flag value",
			environ: map[string]string{"API_TOKEN": "secret"},
			args:    []string{"-a", "nope"},
		},
		{
			name:    "Unknown flag",
			environ: map[string]string{"API_TOKEN": "secret"},
			args:    []string{"-unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			cfg, err := parse(tt.args, tt.environ)

			// Assert
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParse_MissingTokenError(t *testing.T) {
	_, err := parse(nil, map[string]string{})

	assert.ErrorIs(t, err, ErrAPITokenRequired)
}

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected NetworkAddress
		wantErr  bool
	}{
		{name: "Host and port", value: "localhost:8080", expected: NetworkAddress{Host: "localhost", Port: 8080}},
		{name: "Port only", value: ":8080", expected: NetworkAddress{Host: "", Port: 8080}},
		{name: "No port", value: "localhost", wantErr: true},
		{name: "Too many parts", value: "a:b:c", wantErr: true},
		{name: "Port out of range", value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetworkAddress

			err := addr.Set(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestEnvironment_Set(t *testing.T) {
	var e Environment

	require.NoError(t, e.Set("test"))
	assert.Equal(t, EnvTest, e)

	require.Error(t, e.Set("Production"))
	assert.Equal(t, EnvTest, e, "invalid value must not change environment")
}
