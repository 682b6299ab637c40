package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	cfg := New("https://api.pi-builder.dev")

	assert.Equal(t, "https://api.pi-builder.dev", cfg.APIURL)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retries)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean", in: "https://api.pi-builder.dev", want: "https://api.pi-builder.dev"},
		{name: "trailing slash", in: "https://api.pi-builder.dev/", want: "https://api.pi-builder.dev"},
		{name: "multiple trailing slashes", in: "https://api.pi-builder.dev///", want: "https://api.pi-builder.dev"},
		{name: "path suffix", in: "https://api.pi-builder.dev/v1/", want: "https://api.pi-builder.dev/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestValidateRequiresAPIURL(t *testing.T) {
	cfg := New("")
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PIBUILDER_API_URL", "https://api.pi-builder.dev/")
	t.Setenv("PIBUILDER_API_KEY", "secret-key")
	t.Setenv("PIBUILDER_TIMEOUT", "45")
	t.Setenv("PIBUILDER_RETRIES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.pi-builder.dev", cfg.APIURL)
	assert.Equal(t, "secret-key", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.Retries)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PIBUILDER_API_URL", "https://api.pi-builder.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultRetries, cfg.Retries)
}

func TestLoadMissingURL(t *testing.T) {
	t.Setenv("PIBUILDER_API_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIURL)
}

func TestLoadLogging(t *testing.T) {
	t.Setenv("PIBUILDER_API_URL", "https://api.pi-builder.dev")
	t.Setenv("PIBUILDER_LOG_LEVEL", "debug")
	t.Setenv("PIBUILDER_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.pi-builder.dev\nretries: 4\n"), 0o600))
	t.Setenv("PIBUILDER_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://file.pi-builder.dev", cfg.APIURL)
	assert.Equal(t, 4, cfg.Retries)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestEnvironmentWinsOverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.pi-builder.dev\nretries: 4\n"), 0o600))
	t.Setenv("PIBUILDER_CONFIG", path)
	t.Setenv("PIBUILDER_RETRIES", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Retries)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	t.Setenv("PIBUILDER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PIBUILDER_API_URL", "https://api.pi-builder.dev")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := New("https://api.pi-builder.dev")
	cfg.LogLevel = "shouting"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestNewLogger(t *testing.T) {
	cfg := New("https://api.pi-builder.dev")
	logger := cfg.NewLogger()
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	logger = cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	cfg := New("https://api.pi-builder.dev")
	cfg.LogLevel = "shouting"

	assert.Equal(t, logrus.WarnLevel, cfg.NewLogger().GetLevel())
}
