// Package config handles the configuration directory, the config file and
// the resolution of the task API base URL.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"tarefas/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "tarefas"

	// ConfigFile is the optional configuration file name (without extension).
	ConfigFile = "config"

	// DebugLogFile is where the terminal view writes debug logs.
	DebugLogFile = "debug.log"

	// DefaultURL is the collection resource used when nothing is configured.
	DefaultURL = "http://localhost:5000/tarefas"

	// DefaultServer is the origin relative URLs are resolved against.
	DefaultServer = "http://localhost:5000"

	// DefaultTimeout bounds each API call. Zero disables the bound.
	DefaultTimeout = 5 * time.Second

	// DefaultLocale is used for title collation.
	DefaultLocale = "pt-BR"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// URL is the task collection resource, absolute or relative to Server.
	URL string `mapstructure:"url" validate:"required"`

	// Server is the origin used to resolve a relative URL.
	Server string `mapstructure:"server" validate:"required,url"`

	// Timeout bounds each API call.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// Locale is the BCP 47 tag used to collate titles.
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-"`

	// Log receives debug and diagnostic records. Nil discards them.
	Log *slog.Logger `mapstructure:"-" validate:"-"`
}

// New creates a Config with defaults and the default or specified config
// directory. It does not read the config file; see Load.
// If configDir is empty, uses XDG_CONFIG_HOME/tarefas or $HOME/.config/tarefas.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		URL:     DefaultURL,
		Server:  DefaultServer,
		Timeout: DefaultTimeout,
		Locale:  DefaultLocale,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DebugLogPath returns the path of the terminal view debug log.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.Dir, DebugLogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Logger returns the configured logger, or a discarding one.
func (c *Config) Logger() *slog.Logger {
	return logging.OrDiscard(c.Log)
}

// LocaleTag returns the parsed collation locale, falling back to
// DefaultLocale when unset or invalid.
func (c *Config) LocaleTag() language.Tag {
	if tag, err := language.Parse(c.Locale); err == nil {
		return tag
	}
	return language.MustParse(DefaultLocale)
}
