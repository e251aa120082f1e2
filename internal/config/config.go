// Package config loads wallgen settings from flags, WALLGEN_* environment
// variables, an optional config file and built-in defaults, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnyUserName/wallgen/internal/encoder"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WALLGEN"

// Config is the merged configuration of a wallgen invocation.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`

	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Device  string `mapstructure:"device"`
	// Seed is kept as text so that "unset" stays distinguishable from 0.
	Seed    string `mapstructure:"seed"`
	Count   int    `mapstructure:"count"`
	Workers int    `mapstructure:"workers"`
	OutDir  string `mapstructure:"outdir"`
	Format  string `mapstructure:"format"`
	// Patterns restricts the layer generators; empty means all.
	Patterns []string `mapstructure:"patterns"`
	Manifest bool     `mapstructure:"manifest"`
}

// keys maps config keys to the cobra flags that override them.
var keys = map[string]string{
	"log_level": "log-level",
	"verbose":   "verbose",
	"width":     "w",
	"height":    "h",
	"device":    "device",
	"seed":      "seed",
	"count":     "count",
	"workers":   "workers",
	"outdir":    "outdir",
	"format":    "format",
	"patterns":  "patterns",
	"manifest":  "manifest",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("device", "")
	v.SetDefault("seed", "")
	v.SetDefault("count", 1)
	v.SetDefault("workers", 0)
	v.SetDefault("outdir", ".")
	v.SetDefault("format", encoder.DefaultFormat)
	v.SetDefault("patterns", []string{})
	v.SetDefault("manifest", false)
}

// Load builds a Config. Flags of cmd that were set explicitly win over the
// environment; a missing configFile is an error only when it was named.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flag := range keys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound *os.PathError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config file %s not found: %w", configFile, err)
			}
			return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if conf.Verbose {
		conf.LogLevel = "debug"
	}
	return conf, nil
}
