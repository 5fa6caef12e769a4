// Package config loads zshboot's settings. The bootstrap itself is
// deliberately parameterless; the settings here only cover the few
// choices the tool surfaces: whether a failing package install aborts
// the run, and extra packages to install alongside the required set.
package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	zerrors "github.com/arthur-debert/zshboot/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ZSHBOOT_STRICT_INSTALL=true
const EnvPrefix = "ZSHBOOT_"

// Config holds zshboot's settings
type Config struct {
	// StrictInstall aborts the run when the package manager exits
	// non-zero. Off by default: the original flow tolerates a
	// partially failed install and carries on.
	StrictInstall bool `koanf:"strict_install" toml:"strict_install"`

	// ExtraTools are appended to the required tool list in the single
	// bulk install call
	ExtraTools []string `koanf:"extra_tools" toml:"extra_tools"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		StrictInstall: false,
		ExtraTools:    nil,
	}
}

// Load merges settings from three layers, later layers winning:
// built-in defaults, the optional TOML file at configPath, and
// ZSHBOOT_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	defaults := map[string]interface{}{
		"strict_install": false,
		"extra_tools":    []string{},
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Optional settings file
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, zerrors.Wrapf(err, zerrors.ErrConfigParse, "failed to parse %s", configPath)
			}
		}
	}

	// 3. Environment overrides
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, zerrors.Wrap(err, zerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
