// Package config resolves melodious settings from flags, MELODIOUS_* environment
// variables and an optional melodious.yaml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. MELODIOUS_LOGFILE.
	EnvPrefix = "MELODIOUS"
	// DefaultTransitionDelay is how long level content stays hidden when switching levels.
	DefaultTransitionDelay = 300 * time.Millisecond
)

// Config holds the resolved settings.
type Config struct {
	Catalog         string        `mapstructure:"catalog"`
	LogFile         string        `mapstructure:"logFile"`
	Verbose         bool          `mapstructure:"verbose"`
	TransitionDelay time.Duration `mapstructure:"transitionDelay"`
	Mouse           bool          `mapstructure:"mouse"`
}

// Load reads configuration. cfgFile, when set, must exist; otherwise melodious.yaml in
// the working directory is used if present. Flags in fs override file and env values.
func Load(cfgFile string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("catalog", "")
	v.SetDefault("logFile", "")
	v.SetDefault("verbose", false)
	v.SetDefault("transitionDelay", DefaultTransitionDelay)
	v.SetDefault("mouse", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("melodious")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for key, flag := range map[string]string{
			"catalog": "catalog",
			"logFile": "log-file",
			"verbose": "verbose",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.TransitionDelay < 0 {
		return Config{}, fmt.Errorf("transitionDelay must not be negative, got %s", cfg.TransitionDelay)
	}
	return cfg, nil
}
