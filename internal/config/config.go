// Package config loads the client configuration.
//
// Values are resolved, highest precedence first, from command-line flags,
// ESPORTIVAI_* environment variables (a .env file in the working directory is
// loaded into the environment when present), an optional YAML config file
// (--config or ESPORTIVAI_CONFIG), and built-in defaults.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "ESPORTIVAI"
	// ConfigFileEnv names the config file when --config is not given.
	ConfigFileEnv = "ESPORTIVAI_CONFIG"

	DefaultAPIURL  = "http://localhost:3000"
	DefaultUserID  = "1"
	DefaultLocale  = "pt-BR"
	DefaultTimeout = 10 * time.Second
)

// Config holds the resolved client settings.
type Config struct {
	APIURL      string        `mapstructure:"api_url" yaml:"api_url"`
	UserID      string        `mapstructure:"user_id" yaml:"user_id"`
	Locale      string        `mapstructure:"locale" yaml:"locale"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	LogFile     string        `mapstructure:"log_file" yaml:"log_file"`
	Debug       bool          `mapstructure:"debug" yaml:"debug"`
	MetricsAddr string        `mapstructure:"metrics_addr" yaml:"metrics_addr"`
	SkipLogin   bool          `mapstructure:"skip_login" yaml:"skip_login"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"api-url":      "api_url",
	"user-id":      "user_id",
	"locale":       "locale",
	"timeout":      "timeout",
	"log-file":     "log_file",
	"debug":        "debug",
	"metrics-addr": "metrics_addr",
	"skip-login":   "skip_login",
}

// RegisterFlags adds the client flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("api-url", DefaultAPIURL, "base URL of the EsportiVai API")
	fs.String("user-id", DefaultUserID, "id of the signed-in user")
	fs.String("locale", DefaultLocale, "message locale (pt-BR, en)")
	fs.Duration("timeout", DefaultTimeout, "timeout for each API request")
	fs.String("log-file", "", "write structured logs to this file")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9100)")
	fs.Bool("skip-login", false, "start on the dashboard instead of the login screen")
}

// Load resolves the configuration. fs may be nil, in which case only the
// environment, config file and defaults are consulted.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("user_id", DefaultUserID)
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("skip_login", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := os.Getenv(ConfigFileEnv)
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	cfg.UserID = strings.TrimSpace(cfg.UserID)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the client cannot run without.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("config: api_url is required")
	}
	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("config: invalid api_url (%q): %w", c.APIURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid api_url (%q): missing scheme or host", c.APIURL)
	}
	if c.UserID == "" {
		return fmt.Errorf("config: user_id is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
