// Package config provides configuration loading and validation for the resume normalizer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// EnvPrefix is the prefix for environment variable overrides, e.g. RESUME_NORMALIZER_LOGGING_LEVEL
const EnvPrefix = "RESUME_NORMALIZER"

// Config holds all pipeline configuration.
// Precedence: environment variables, then the config file, then defaults.
type Config struct {
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ExtractionConfig holds upload boundary limits
type ExtractionConfig struct {
	MaxUploadBytes   int64    `mapstructure:"maxUploadBytes" validate:"gt=0,lte=10485760"`
	AllowedMIMETypes []string `mapstructure:"allowedMimeTypes" validate:"required,min=1,dive,oneof=application/pdf application/vnd.openxmlformats-officedocument.wordprocessingml.document application/msword text/plain"`
}

// BatchConfig holds settings for concurrent document ingestion
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Default returns the configuration used when no file or environment overrides are present
func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			MaxUploadBytes: types.MaxDocumentSize,
			AllowedMIMETypes: []string{
				types.MIMETypePDF,
				types.MIMETypeDOCX,
				types.MIMETypeLegacyDoc,
				types.MIMETypePlainText,
			},
		},
		Batch: BatchConfig{
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults registers every key so that environment overrides are picked up by Unmarshal
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("extraction.maxUploadBytes", d.Extraction.MaxUploadBytes)
	v.SetDefault("extraction.allowedMimeTypes", d.Extraction.AllowedMIMETypes)
	v.SetDefault("batch.concurrency", d.Batch.Concurrency)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// LoadConfig loads configuration from defaults, an optional config file and the environment.
// When path is empty the file "resume-normalizer.{yaml,json,toml}" is searched in the
// current directory and $HOME/.resume-normalizer; a missing file is not an error then.
// An explicit path that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("resume-normalizer")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.resume-normalizer")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Extraction.AllowedMIMETypes = normalizeList(cfg.Extraction.AllowedMIMETypes)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msgs := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// normalizeList lower-cases and trims entries and splits comma-separated values coming from env vars
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
