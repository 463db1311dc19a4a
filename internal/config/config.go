// Package config loads agentlint settings using Viper.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// AGENTLINT_AGENTS_DIR.
const EnvPrefix = "AGENTLINT"

// configDirEnv overrides the per-user config directory, mainly for tests.
const configDirEnv = EnvPrefix + "_CONFIG_DIR"

// Keys understood by Load. Command flags are bound to the same keys.
const (
	KeyAgentsDir = "agents_dir"
	KeyPattern   = "pattern"
	KeyFormat    = "format"
)

// Report formats accepted by the format key.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the top-level configuration structure.
type Config struct {
	// AgentsDir is the directory scanned for agent configurations.
	AgentsDir string `mapstructure:"agents_dir" yaml:"agents_dir" validate:"required"`
	// Pattern selects files inside AgentsDir.
	Pattern string `mapstructure:"pattern" yaml:"pattern" validate:"required"`
	// Format is the report format.
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		AgentsDir: paths.DefaultAgentsDir,
		Pattern:   paths.DefaultPattern,
		Format:    FormatText,
	}
}

// Init resets Viper and registers search paths, environment bindings and
// defaults. Call it once before binding flags and calling Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("agentlint")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir, ok := os.LookupEnv(configDirEnv); ok && dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault(KeyAgentsDir, def.AgentsDir)
	viper.SetDefault(KeyPattern, def.Pattern)
	viper.SetDefault(KeyFormat, def.Format)
}

// Load reads the configuration file and validates the merged result.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, the default locations are searched and a
// missing file falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case path != "" && os.IsNotExist(errors.UnwrapAll(err)):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
