// Package config resolves tool settings from defaults, an optional YAML
// file, and SAFEBACK_* environment variables, in that order.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/safeback/pkg/safeback/audit"
)

// DefaultFileName is the config file probed in the working directory
// when no explicit path is given.
const DefaultFileName = ".safeback.yaml"

// Config carries the ambient state the core components take explicitly:
// the working directory, the audit file name, the acting user, and the
// diagnostic log level.
type Config struct {
	Root     string `yaml:"root"`
	LogFile  string `yaml:"log_file"`
	User     string `yaml:"user"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings: process working directory,
// "logfile.txt", the OS account name, and warn-level diagnostics.
func Default() Config {
	return Config{
		LogFile:  audit.DefaultFileName,
		User:     audit.CurrentUser(),
		LogLevel: "warn",
	}
}

// Load resolves the configuration. A non-empty path names a required
// YAML file; otherwise DefaultFileName is read if present. A ".env" file
// in the working directory is honored before environment overrides.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(pathOrDefault(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case path != "" || !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config %s: %w", pathOrDefault(path), err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func pathOrDefault(path string) string {
	if path == "" {
		return DefaultFileName
	}
	return path
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SAFEBACK_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("SAFEBACK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("SAFEBACK_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("SAFEBACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
