// Package config resolves command line configuration from defaults, an
// optional TOML file, RANKCACHE_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"rankcache/internal/cache"
	"rankcache/internal/logging"
)

const (
	EnvPrefix = "RANKCACHE"

	KeyCapacity  = "capacity"
	KeyPolicy    = "policy"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyColor     = "color"

	defaultCapacity = 4
)

// Config is the validated view handed to commands.
type Config struct {
	Capacity int
	Policy   cache.Policy
	Logging  logging.Config
	Color    bool
}

// raw mirrors the file/env layout before validation.
type raw struct {
	Capacity int    `mapstructure:"capacity"`
	Policy   string `mapstructure:"policy"`
	Log      struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Color bool `mapstructure:"color"`
}

// New returns a viper instance with defaults and environment binding applied.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyCapacity, defaultCapacity)
	v.SetDefault(KeyPolicy, cache.LRU.String())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyColor, true)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "rankcache"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and validates the merged result.
//
// When file is empty the default search path is used and a missing file is
// ignored. An explicit file that cannot be read is an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var r raw
	if err := v.Unmarshal(&r); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return r.validate()
}

func (r raw) validate() (Config, error) {
	if r.Capacity <= 0 {
		return Config{}, fmt.Errorf("config %s: %w (got %d)", KeyCapacity, cache.ErrInvalidCapacity, r.Capacity)
	}

	policy, err := cache.ParsePolicy(r.Policy)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeyPolicy, err)
	}

	level, err := logging.ParseLevel(r.Log.Level)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	switch r.Log.Format {
	case "json", "console":
		logCfg.Format = r.Log.Format
	default:
		return Config{}, fmt.Errorf("config %s: unknown format %q", KeyLogFormat, r.Log.Format)
	}
	logCfg.NoColor = !r.Color

	return Config{
		Capacity: r.Capacity,
		Policy:   policy,
		Logging:  logCfg,
		Color:    r.Color,
	}, nil
}
