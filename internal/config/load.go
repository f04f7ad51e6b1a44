package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TAREFAS_URL.
const EnvPrefix = "TAREFAS"

// Load reads config.yaml from configDir (if present) and TAREFAS_*
// environment variables on top of the defaults, then validates the result.
// Environment variables take precedence over the file.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("url", cfg.URL)
	v.SetDefault("server", cfg.Server)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("locale", cfg.Locale)

	v.SetConfigName(ConfigFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s: failed on %q", strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.BaseURL(); err != nil {
		return err
	}
	return nil
}

// BaseURL returns the absolute collection resource URL. A relative URL
// (e.g. "/tarefas") is resolved against Server.
func (c *Config) BaseURL() (string, error) {
	ref, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid config: url: %w", err)
	}
	if ref.IsAbs() {
		if ref.Host == "" {
			return "", fmt.Errorf("invalid config: url: missing host: %s", c.URL)
		}
		return strings.TrimRight(ref.String(), "/"), nil
	}

	base, err := url.Parse(c.Server)
	if err != nil || !base.IsAbs() {
		return "", fmt.Errorf("invalid config: server: %s", c.Server)
	}
	return strings.TrimRight(base.ResolveReference(ref).String(), "/"), nil
}
