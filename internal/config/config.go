package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultConfigFile = "relation-factory.yaml"
	DefaultOutput     = "-"
	DefaultOnUnknown  = "abort"
	DefaultLogLevel   = "info"

	envPrefix = "RELFACTORY_"
)

// flagKeys maps flag names that differ from their config keys.
var flagKeys = map[string]string{
	"members": "members_file",
}

// Config holds all settings for an import run.
type Config struct {
	ProjectID   int64  `koanf:"project_id"`
	MembersFile string `koanf:"members_file"`
	Input       string `koanf:"input"`
	Output      string `koanf:"output"`
	OnUnknown   string `koanf:"on_unknown"`
	Strict      bool   `koanf:"strict"`
	LogLevel    string `koanf:"log_level"`

	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-"`
}

// Load loads configuration from defaults, file, environment and flags.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"output":     DefaultOutput,
		"on_unknown": DefaultOnUnknown,
		"log_level":  DefaultLogLevel,
		"strict":     false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// RELFACTORY_PROJECT_ID -> project_id
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			key := strings.ReplaceAll(f.Name, "-", "_")
			if mapped, ok := flagKeys[f.Name]; ok {
				key = mapped
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.FileUsed = path

	return &cfg, nil
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}

		return explicit, nil
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}

	return "", nil
}

// Validate checks the settings an import needs.
func (c *Config) Validate() error {
	var errs []error

	if c.ProjectID <= 0 {
		errs = append(errs, fmt.Errorf("project_id must be positive, got %d", c.ProjectID))
	}

	if _, err := ParsePolicy(c.OnUnknown); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Policy returns the parsed on_unknown policy, defaulting to abort.
func (c *Config) Policy() UnknownPolicy {
	p, err := ParsePolicy(c.OnUnknown)
	if err != nil {
		return PolicyAbort
	}

	return p
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
