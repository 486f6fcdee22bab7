package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the flags the CLI registers.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("lang", DefaultLang, "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("port", DefaultPort, "")
	fs.Bool("watch", false, "")
	fs.Bool("no-browser", false, "")
	fs.String("out", DefaultOutDir, "")
	fs.Bool("minify", false, "")
	fs.Bool("markdown", false, "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	defer ResetConfig()

	cfg, err := LoadConfig(filepath.Join("testdata", "tutor.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Lang)
	assert.Equal(t, "Tutor Escola", cfg.Site.Title)
	assert.Equal(t, "escola@example.org", cfg.Site.ContactEmail)
	assert.Equal(t, 2025, cfg.Site.Year)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "public", cfg.Export.OutDir)
	assert.True(t, cfg.Export.Minify)

	// untouched keys keep their defaults
	assert.Equal(t, Default().Site.Description, cfg.Site.Description)
	assert.True(t, cfg.Server.AutoOpen)
}

func TestLoadConfig_FindsFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tutor.yml"), []byte("server:\n  port: 7000\n"), 0o600))
	t.Chdir(dir)
	defer ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "tutor.yml", GetConfigFileUsed())
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfig_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		wantPort int
		wantLang string
	}{
		{
			name:     "file only",
			wantPort: 9090,
			wantLang: "en-US",
		},
		{
			name:     "env overrides file",
			env:      map[string]string{"TUTOR_SERVER__PORT": "9191", "TUTOR_LANG": "es"},
			wantPort: 9191,
			wantLang: "es",
		},
		{
			name:     "flag overrides env",
			env:      map[string]string{"TUTOR_SERVER__PORT": "9191"},
			args:     []string{"--port", "9292"},
			wantPort: 9292,
			wantLang: "en-US",
		},
		{
			name:     "unchanged flag keeps lower layers",
			env:      map[string]string{"TUTOR_SERVER__PORT": "9191"},
			args:     []string{"--watch"},
			wantPort: 9191,
			wantLang: "en-US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer ResetConfig()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			flags := newFlags()
			require.NoError(t, flags.Parse(tt.args))

			cfg, err := LoadConfig(filepath.Join("testdata", "tutor.yaml"), flags)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantLang, cfg.Lang)
		})
	}
}

func TestLoadConfig_FlagMapping(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{
		"--no-browser", "--out", "site", "--minify", "--markdown", "--log-level", "warn", "-v",
	}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.False(t, cfg.Server.AutoOpen)
	assert.Equal(t, "site", cfg.Export.OutDir)
	assert.True(t, cfg.Export.Minify)
	assert.True(t, cfg.Export.Markdown)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "invalid port",
			env:     map[string]string{"TUTOR_SERVER__PORT": "70000"},
			wantErr: ErrInvalidPort,
		},
		{
			name:    "invalid lang",
			env:     map[string]string{"TUTOR_LANG": "not a language"},
			wantErr: ErrInvalidLang,
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"TUTOR_LOG_LEVEL": "loud"},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "malformed yaml",
			file: filepath.Join("testdata", "invalid.yaml"),
		},
		{
			name: "missing explicit file",
			file: filepath.Join("testdata", "missing.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer ResetConfig()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			file := tt.file
			if file == "" {
				file = filepath.Join("testdata", "tutor.yaml")
			}

			_, err := LoadConfig(file, nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "site.contact_email", envKey("TUTOR_SITE__CONTACT_EMAIL"))
	assert.Equal(t, "log_level", envKey("TUTOR_LOG_LEVEL"))
	assert.Equal(t, "lang", envKey("TUTOR_LANG"))
}

func TestConfig_PageOptions(t *testing.T) {
	cfg := Default()
	cfg.Lang = "en"
	cfg.Site.Title = "Outro"
	cfg.Site.Year = 2030

	opts := cfg.PageOptions()
	assert.Equal(t, "en", opts.Lang)
	assert.Equal(t, "Outro", opts.Title)
	assert.Equal(t, 2030, opts.Year)
	assert.Equal(t, Default().Site.ContactEmail, opts.ContactEmail)
	assert.False(t, opts.LiveReload)

	empty := (&Config{}).PageOptions()
	assert.Equal(t, DefaultLang, empty.Lang)
	assert.NotEmpty(t, empty.Title)
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want slog.Level
	}{
		{"default", Config{LogLevel: "info"}, slog.LevelInfo},
		{"error", Config{LogLevel: "error"}, slog.LevelError},
		{"verbose wins", Config{LogLevel: "error", Verbose: true}, slog.LevelDebug},
		{"garbage falls back", Config{LogLevel: "loud"}, slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Level())
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "missing logger falls back to discard")

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Equal(t, loggerKey{}, LoggerKey())
}
