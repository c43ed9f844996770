package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/studiowebux/trending/internal/api"
	"github.com/studiowebux/trending/internal/render"
)

const (
	// EnvPrefix prefixes every environment override (TRENDING_API_URL, ...)
	EnvPrefix = "TRENDING"

	// Keys shared by the config file, the environment and the flags
	KeyAPIURL  = "api-url"
	KeyTimeout = "timeout"
	KeyEmoji   = "emoji"
	KeyOutput  = "output"
	KeyConfirm = "confirm"
	KeyVerbose = "verbose"
)

// Config holds the resolved settings of one run. It is read-only: nothing is written back.
type Config struct {
	APIURL  string
	Timeout time.Duration
	Emoji   render.EmojiMode
	Output  string
	Confirm bool
	Verbose bool

	// File is the config file that was read, empty if none
	File string
}

// DefaultConfigDir returns ~/.trending
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".trending"), nil
}

// Load resolves the configuration with precedence flag > env > file > default.
// configFile may be empty, in which case ~/.trending/config.yaml is used when it exists.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyAPIURL, api.DefaultBaseURL)
	v.SetDefault(KeyTimeout, api.DefaultTimeout)
	v.SetDefault(KeyEmoji, string(render.EmojiAuto))
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyConfirm, false)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist, the default one is optional
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyAPIURL, KeyTimeout, KeyEmoji, KeyOutput, KeyConfirm, KeyVerbose} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{
		APIURL:  strings.TrimSpace(v.GetString(KeyAPIURL)),
		Timeout: v.GetDuration(KeyTimeout),
		Emoji:   render.ParseEmojiMode(v.GetString(KeyEmoji)),
		Output:  strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		Confirm: v.GetBool(KeyConfirm),
		Verbose: v.GetBool(KeyVerbose),
		File:    v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%s must not be empty", KeyAPIURL)
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("%s must be an http(s) URL, got %q", KeyAPIURL, c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyTimeout)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%s must be one of text, json, yaml, got %q", KeyOutput, c.Output)
	}
	return nil
}
