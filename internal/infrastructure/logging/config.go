package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LogFormat selects the logrus formatter
type LogFormat string

const (
	FormatJSON LogFormat = "json"
	FormatText LogFormat = "text"
)

// LoggerConfig describe la salida y la identidad del servicio en cada entrada
type LoggerConfig struct {
	Level       LogLevel
	Format      LogFormat
	Output      io.Writer
	Service     string
	Version     string
	Environment string
}

// DefaultConfig logs INFO and above as JSON to stdout
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LevelInfo,
		Format:      FormatJSON,
		Output:      os.Stdout,
		Service:     "btc-price-client",
		Environment: "development",
	}
}

// NewConfig is DefaultConfig with the service identity filled in
func NewConfig(service, version, environment string) *LoggerConfig {
	c := DefaultConfig()
	c.Service = service
	c.Version = version
	c.Environment = environment
	return c
}

// NewTestingConfig logs everything as JSON, for tests that decode entries
func NewTestingConfig(service string) *LoggerConfig {
	return NewConfig(service, "test", "testing").WithLevel(LevelDebug)
}

func (c *LoggerConfig) WithLevel(level LogLevel) *LoggerConfig {
	c.Level = level
	return c
}

func (c *LoggerConfig) WithFormat(format LogFormat) *LoggerConfig {
	c.Format = format
	return c
}

func (c *LoggerConfig) WithOutput(output io.Writer) *LoggerConfig {
	c.Output = output
	return c
}

// Validate reports every invalid field at once
func (c *LoggerConfig) Validate() error {
	var errs []error

	switch c.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		errs = append(errs, &ConfigError{Field: "level", Value: string(c.Level), Message: "unknown log level"})
	}
	switch c.Format {
	case FormatJSON, FormatText:
	default:
		errs = append(errs, &ConfigError{Field: "format", Value: string(c.Format), Message: "unknown log format"})
	}
	if c.Output == nil {
		errs = append(errs, &ConfigError{Field: "output", Message: "no writer"})
	}
	if strings.TrimSpace(c.Service) == "" {
		errs = append(errs, &ConfigError{Field: "service", Message: "empty service name"})
	}

	return errors.Join(errs...)
}

// ConfigError is one rejected LoggerConfig field
type ConfigError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logging config: %s %q: %s", e.Field, e.Value, e.Message)
}

// ParseLevel accepts the level names used in config files, case-insensitive.
// Anything unrecognized means INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// ParseFormat returns FormatText for "text", FormatJSON otherwise
func ParseFormat(format string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(format), string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}
