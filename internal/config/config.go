// Package config manages user-level settings stored at
// ~/.agentsync/config.yaml: defaults for sync behavior (gitignore
// maintenance, watch debounce) and the download mirror used by self-update.
// Values can be overridden through AGENTSYNC_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentsync-labs/agentsync/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known keys.
const (
	KeyGitignore     = "sync.gitignore"      // bool: maintain .gitignore entries
	KeyWatchDebounce = "watch.debounce_ms"   // int: watcher debounce in milliseconds
	KeyMirrorURL     = "update.mirror_url"   // string: release download mirror
)

// Dir returns the config directory (~/.agentsync).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full config file path (~/.agentsync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a config value by key, empty string if unset.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value, false if unset.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetInt returns an integer config value, zero if unset.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", Dir(), err)
	}

	viper.Set(key, value)

	path := FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", path, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
