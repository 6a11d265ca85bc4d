/*
Package config loads akash's own settings from ~/.akash/config.toml.

Every key can also be set from the environment with the AKASH_ prefix, for
example AKASH_SHELL=zsh. Environment values win over the file.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akash-sh/akash/internal/logger"
	"github.com/akash-sh/akash/internal/repositories/atomicfile"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvConfigPath names the variable that points at an alternative config file.
const EnvConfigPath = "AKASH_CONFIG"

const (
	keyShell       = "shell"
	keyAliasesPath = "aliases_path"
	keyLogLevel    = "log_level"
)

// Config holds the tool settings.
type Config struct {
	Shell       string `mapstructure:"shell" toml:"shell" comment:"Shell to write aliases for: bash, zsh or powershell. Empty means detect." commented:"true"`
	AliasesPath string `mapstructure:"aliases_path" toml:"aliases_path" comment:"Alias store location. Empty means ~/.akash/aliases.yaml." commented:"true"`
	LogLevel    string `mapstructure:"log_level" toml:"log_level" comment:"Diagnostics on stderr: trace, debug, info, warn or error."`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{LogLevel: logger.DefaultLevel}
}

// DefaultPath returns $AKASH_CONFIG, or ~/.akash/config.toml.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.WithHint(
			errors.New("failed to determine home directory for config"),
			"set "+EnvConfigPath+" to an explicit config file path")
	}
	return filepath.Join(home, ".akash", "config.toml"), nil
}

// Load reads path if it exists and applies AKASH_* environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AKASH")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(keyShell, def.Shell)
	v.SetDefault(keyAliasesPath, def.AliasesPath)
	v.SetDefault(keyLogLevel, def.LogLevel)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "failed to read config file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to stat config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config %s", path)
	}
	cfg.Shell = strings.TrimSpace(cfg.Shell)
	cfg.AliasesPath = expandHome(strings.TrimSpace(cfg.AliasesPath))
	return &cfg, nil
}

// EnsureDefault writes a commented default config to path unless a file is
// already there. It reports whether a file was created.
func EnsureDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "failed to stat config file %s", path)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return false, errors.Wrap(err, "failed to encode default config")
	}
	header := "# akash settings. Environment variables AKASH_SHELL, AKASH_ALIASES_PATH\n# and AKASH_LOG_LEVEL override these values.\n\n"
	if err := atomicfile.Write(path, append([]byte(header), data...)); err != nil {
		return false, errors.Wrapf(err, "failed to write default config %s", path)
	}
	return true, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
