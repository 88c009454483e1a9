// Package config resolves zonerefine settings from flags, environment
// variables (ZONEREFINE_*), an optional .env file and an optional YAML
// config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "ZONEREFINE"
	configName     = "zonerefine"
	defaultFormat  = "text"
	defaultCycles  = 10
	defaultProtect = true
)

// Formats lists the accepted report formats.
var Formats = []string{"text", "json", "yaml"}

type Config struct {
	MaxCycles      int    `mapstructure:"max_cycles"`
	ProtectMarkup  bool   `mapstructure:"protect_markup"`
	Format         string `mapstructure:"format"`
	RequireEnglish bool   `mapstructure:"require_english"`
	Verbose        bool   `mapstructure:"verbose"`
}

// New returns a viper instance with defaults and environment binding set
// up. Flags are bound onto it by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("max_cycles", defaultCycles)
	v.SetDefault("protect_markup", defaultProtect)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("require_english", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional .env file and config file into v and decodes the
// result. An explicit cfgFile must exist; the implicit search locations
// (working directory, $HOME/.config/zonerefine) may be empty.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.MaxCycles <= 0 {
		return fmt.Errorf("max_cycles must be positive, got %d", c.MaxCycles)
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
}
