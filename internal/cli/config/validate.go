package config

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
)

// Validation errors.
var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidLang     = errors.New("invalid lang")
	ErrInvalidLogLevel = errors.New("invalid log_level")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d (must be between 0 and 65535)", ErrInvalidPort, c.Server.Port)
	}

	tag, err := language.Parse(c.Lang)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLang, c.Lang, err)
	}
	c.Lang = tag.String()

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w %q: use debug, info, warn or error", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	return nil
}
