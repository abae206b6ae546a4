// Package appconfig loads the CLI's optional TOML configuration file from
// the platform-appropriate location. Merging it with CLI flags is left to
// the caller (cmd/to-html).
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Shell configures how the command is spawned.
type Shell struct {
	Program string `toml:"program"`
}

// Output configures how the conversion result is formatted.
type Output struct {
	CWD          string   `toml:"cwd"`
	FullDocument bool     `toml:"full_document"`
	Highlight    []string `toml:"highlight"`
	CSSPrefix    string   `toml:"css_prefix"`
	Theme        string   `toml:"theme"`
}

// Config is the full, optional on-disk configuration. Every field is
// optional; a missing config file is not an error.
type Config struct {
	Shell  Shell  `toml:"shell"`
	Output Output `toml:"output"`
}

// Load reads and parses the config file at its platform-default path. It
// returns a zero Config, not an error, when the file does not exist.
func Load() (Config, error) {
	path, err := defaultPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses the config file at an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("appconfig: read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// defaultPath resolves the platform config path: XDG_CONFIG_HOME (or
// ~/.config) on Linux and other Unix systems, ~/Library/Application
// Support on macOS.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("appconfig: resolve home directory: %w", err)
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "to-html", "config.toml"), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "to-html", "config.toml"), nil
}
