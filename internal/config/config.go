package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const envPrefix = "PIBUILDER"

// Defaults applied when a setting is not supplied explicitly.
const (
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3
)

var ErrMissingAPIURL = fmt.Errorf(
	"no api url configured. Set PIBUILDER_API_URL or pass the url explicitly")

// Config carries the immutable session settings for one client instance.
type Config struct {
	APIURL    string
	APIKey    string
	Timeout   time.Duration
	Retries   int
	LogLevel  string
	LogFormat string
}

// New builds a Config for the given base URL with the library defaults
// applied.
func New(apiURL string) *Config {
	return &Config{
		APIURL:    NormalizeURL(apiURL),
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// NormalizeURL strips trailing slashes from a base URL so server-relative
// paths can be appended with plain concatenation.
func NormalizeURL(apiURL string) string {
	return strings.TrimRight(apiURL, "/")
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if len(c.APIURL) == 0 {
		return ErrMissingAPIURL
	}
	if len(c.LogLevel) > 0 {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("error parsing log level: %w", err)
		}
	}
	return nil
}

// rawConfig is the environment shape of the recognized settings. Timeout is
// in seconds, matching the published configuration contract.
type rawConfig struct {
	APIURL    string `mapstructure:"api_url"`
	APIKey    string `mapstructure:"api_key"`
	Timeout   int    `mapstructure:"timeout"`
	Retries   int    `mapstructure:"retries"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load assembles a Config from the environment: a .env file when present,
// an optional config.yaml, and PIBUILDER_* variables, which win over the
// file.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()

	setupViperConfig(v)

	bindEnvironmentVariables(v)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	config := &Config{
		APIURL:    NormalizeURL(raw.APIURL),
		APIKey:    raw.APIKey,
		Timeout:   time.Duration(raw.Timeout) * time.Second,
		Retries:   raw.Retries,
		LogLevel:  raw.LogLevel,
		LogFormat: raw.LogFormat,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with the process env
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Failed to load .env file")
		}
	}
}

// setupViperConfig registers the config file locations, defaults and
// environment settings
func setupViperConfig(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home := os.Getenv("HOME"); len(home) > 0 {
		v.AddConfigPath(filepath.Join(home, ".config", "pibuilder"))
	}

	if configFile := os.Getenv("PIBUILDER_CONFIG"); len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
}

// readConfigFile merges the config file into viper. A file that simply is
// not there is fine; a file that was named explicitly but cannot be read is
// not.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}
	return nil
}

// setDefaults registers default values for every recognized setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("timeout", int(DefaultTimeout/time.Second))
	v.SetDefault("retries", DefaultRetries)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("api_url", "PIBUILDER_API_URL")
	v.BindEnv("api_key", "PIBUILDER_API_KEY")
	v.BindEnv("timeout", "PIBUILDER_TIMEOUT")
	v.BindEnv("retries", "PIBUILDER_RETRIES")
	v.BindEnv("log_level", "PIBUILDER_LOG_LEVEL")
	v.BindEnv("log_format", "PIBUILDER_LOG_FORMAT")
}
