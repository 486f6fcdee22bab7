// Package config provides configuration management for the Tutor CLI.
package config

import (
	"log/slog"
	"time"

	"github.com/projeto-tutor/tutor/internal/ui/pages"
)

// Default configuration values.
const (
	DefaultLang            = "pt-BR"
	DefaultLogLevel        = "info"
	DefaultPort            = 8080
	DefaultOutDir          = "dist"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds all CLI configuration options.
type Config struct {
	Lang     string       `koanf:"lang" yaml:"lang"`
	LogLevel string       `koanf:"log_level" yaml:"log_level"`
	Verbose  bool         `koanf:"verbose" yaml:"verbose"`
	Site     SiteConfig   `koanf:"site" yaml:"site"`
	Server   ServerConfig `koanf:"server" yaml:"server"`
	Export   ExportConfig `koanf:"export" yaml:"export"`
}

// SiteConfig overrides the document shell. Empty fields keep the
// built-in copy.
type SiteConfig struct {
	Title        string `koanf:"title" yaml:"title"`
	Description  string `koanf:"description" yaml:"description"`
	ContactEmail string `koanf:"contact_email" yaml:"contact_email"`
	Year         int    `koanf:"year" yaml:"year"`
}

// ServerConfig holds configuration for the site server.
type ServerConfig struct {
	Port            int           `koanf:"port" yaml:"port"`
	Watch           bool          `koanf:"watch" yaml:"watch"`
	AutoOpen        bool          `koanf:"auto_open" yaml:"auto_open"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ExportConfig holds configuration for static exports.
type ExportConfig struct {
	OutDir   string `koanf:"out_dir" yaml:"out_dir"`
	Minify   bool   `koanf:"minify" yaml:"minify"`
	Markdown bool   `koanf:"markdown" yaml:"markdown"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	page := pages.DefaultOptions()
	return &Config{
		Lang:     DefaultLang,
		LogLevel: DefaultLogLevel,
		Site: SiteConfig{
			Title:        page.Title,
			Description:  page.Description,
			ContactEmail: page.ContactEmail,
			Year:         page.Year,
		},
		Server: ServerConfig{
			Port:            DefaultPort,
			AutoOpen:        true,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Export: ExportConfig{
			OutDir: DefaultOutDir,
		},
	}
}

// defaultMap flattens Default into koanf keys.
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"lang":                    d.Lang,
		"log_level":               d.LogLevel,
		"verbose":                 d.Verbose,
		"site.title":              d.Site.Title,
		"site.description":        d.Site.Description,
		"site.contact_email":      d.Site.ContactEmail,
		"site.year":               d.Site.Year,
		"server.port":             d.Server.Port,
		"server.watch":            d.Server.Watch,
		"server.auto_open":        d.Server.AutoOpen,
		"server.shutdown_timeout": d.Server.ShutdownTimeout.String(),
		"export.out_dir":          d.Export.OutDir,
		"export.minify":           d.Export.Minify,
		"export.markdown":         d.Export.Markdown,
	}
}

// PageOptions maps the site settings onto document options.
func (c *Config) PageOptions() pages.Options {
	opts := pages.DefaultOptions()
	if c.Lang != "" {
		opts.Lang = c.Lang
	}
	if c.Site.Title != "" {
		opts.Title = c.Site.Title
	}
	if c.Site.Description != "" {
		opts.Description = c.Site.Description
	}
	if c.Site.ContactEmail != "" {
		opts.ContactEmail = c.Site.ContactEmail
	}
	if c.Site.Year != 0 {
		opts.Year = c.Site.Year
	}
	return opts
}

// Level returns the slog level. Verbose always means debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
