// Config loading for the depot CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyAssetDir = "asset_dir"
	cfgKeyMounts   = "mounts"
)

// Mount source types accepted in config.yaml.
const (
	mountTypeDir  = "dir"
	mountTypePack = "pack"
)

// mountSpec is one entry of the config.yaml mount table. Path is resolved
// against the asset directory when relative.
type mountSpec struct {
	Prefix string `mapstructure:"prefix"`
	Type   string `mapstructure:"type"`
	Path   string `mapstructure:"path"`
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Depot CLI configuration

# Directory mount roots resolve against (optional; overridable by --asset-dir)
# asset_dir:

# Mount table: each entry binds a registry prefix to a source.
# type is "dir" (directory tree) or "pack" (SQLite pack file).
mounts:
  - prefix: data
    type: dir
    path: .
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// loadMounts decodes and validates the mount table.
func loadMounts(v *viper.Viper) ([]mountSpec, error) {
	var mounts []mountSpec
	if err := v.UnmarshalKey(cfgKeyMounts, &mounts); err != nil {
		return nil, fmt.Errorf("decode mounts: %w", err)
	}
	for i, m := range mounts {
		if m.Prefix == "" {
			return nil, fmt.Errorf("mount %d: prefix must not be empty", i)
		}
		if m.Type != mountTypeDir && m.Type != mountTypePack {
			return nil, fmt.Errorf("mount %q: unknown type %q (want %q or %q)", m.Prefix, m.Type, mountTypeDir, mountTypePack)
		}
		if m.Path == "" {
			return nil, fmt.Errorf("mount %q: path must not be empty", m.Prefix)
		}
	}
	return mounts, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
