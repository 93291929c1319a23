// Package config resolves the game settings from defaults, a .env file, the environment and command line flags.
package config

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DETECTIVEQUEST_LOG_LEVEL.
const EnvPrefix = "DETECTIVEQUEST"

type Config struct {
	LogLevel string `mapstructure:"log_level"`
}

// Level returns the parsed log level. Load has already validated it.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// LoadDotEnv loads environment variables from path. A missing file is not an error and variables already present in
// the environment are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load dotenv", slog.String("path", path))
	}
	return nil
}

// Load resolves the configuration. Flags that were set explicitly win over the environment, which wins over the
// defaults. The flag log-level is bound when flags defines it.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if flag := flags.Lookup("log-level"); flag != nil {
			if err := v.BindPFlag("log_level", flag); err != nil {
				return Config{}, errors.Wrap(err, "bind log-level flag")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}
