package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Logging defaults. The library stays quiet below warnings unless asked
// otherwise.
const (
	DefaultLogLevel  = "warning"
	DefaultLogFormat = "text"
)

// NewLogger builds the logger a client instance runs with, honoring the
// configured level and format. An unparseable or empty level falls back to
// the warning default; Validate reports unparseable levels as errors before
// a client is built.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(c.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	return logger
}
