package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zsiec/pkg/tracing"
)

// Config holds the timecode service configuration, read from the
// environment.
type Config struct {
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`

	// DefaultFPS is the frame rate assumed for requests that carry
	// neither a rate nor a delimiter to infer one from.
	DefaultFPS float64 `envconfig:"DEFAULT_FPS" default:"29.97"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisDB   int    `envconfig:"REDIS_DB"`

	// Tracer is wired in by the host process, not the environment.
	Tracer tracing.Tracer `ignored:"true"`
}

// LoadConfig reads the service configuration from environment
// variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "processing environment config")
	}
	return &cfg, nil
}

// Logger builds a logrus logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	log := logrus.New()
	log.SetLevel(level)
	return log, nil
}
