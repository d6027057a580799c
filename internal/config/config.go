// Package config loads and validates client configuration from a YAML file,
// environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ServerConfig points the client at the exam-prep backend.
type ServerConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

// Timeout returns the per-request timeout.
func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StudyConfig tunes the session/test lifecycle.
type StudyConfig struct {
	// PollIntervalSeconds is the generation-status polling cadence.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" validate:"min=1"`

	// QuestionCount is the target count for the fallback question fetch.
	QuestionCount int `mapstructure:"question_count" validate:"min=5,max=10"`
}

// PollInterval returns the poll cadence as a duration.
func (c StudyConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Config is the full client configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Study  StudyConfig  `mapstructure:"study"`
	Log    LogConfig    `mapstructure:"log"`
}

// Loader reads configuration with viper and validates the result.
type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator translator
}

// NewLoader creates a Loader. An empty configFile falls back to the
// default search path ($XDG_CONFIG_HOME/prepdeck, then the working dir).
func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$XDG_CONFIG_HOME/prepdeck")
		v.AddConfigPath("$HOME/.config/prepdeck")
		v.AddConfigPath(".")
	}

	return &Loader{viper: v, validator: validate, translator: trans}, nil
}

// Load reads, unmarshals, and validates the configuration. A missing
// config file is fine; defaults and environment variables apply.
func (l *Loader) Load() (*Config, error) {
	v := l.viper

	v.SetDefault("server.base_url", "https://api.prepdeck.app")
	v.SetDefault("server.timeout_seconds", 10)
	v.SetDefault("study.poll_interval_seconds", 2)
	v.SetDefault("study.question_count", 10)
	v.SetDefault("log.level", "info")

	if err := v.BindEnv("server.base_url", "PREPDECK_BASE_URL"); err != nil {
		return nil, fmt.Errorf("bind PREPDECK_BASE_URL: %w", err)
	}
	if err := v.BindEnv("log.level", "PREPDECK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind PREPDECK_LOG_LEVEL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := l.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, e.Translate(l.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}

	return &cfg, nil
}
