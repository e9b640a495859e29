// Root command for the depot CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gladeworks/depot/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagAssetDir  string
	flagJSON      bool
)

// configAssetDir holds the asset_dir value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configAssetDir string

// mountSpecs holds the mount table loaded from config.yaml.
var mountSpecs []mountSpec

var rootCmd = &cobra.Command{
	Use:     "depot",
	Short:   "Depot is a multi-source asset registry",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configAssetDir = cfg.GetString(cfgKeyAssetDir)
		mountSpecs, err = loadMounts(cfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagAssetDir, "asset-dir", "", "directory mount roots resolve against (default: $(CWD)/assets)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mountsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sniffCmd)
	rootCmd.AddCommand(packCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > DEPOT_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveAssetDir returns the mount root directory following the
// precedence chain: --asset-dir flag > config.yaml asset_dir >
// DEPOT_ASSET_DIR env > $(CWD)/assets.
func resolveAssetDir() (string, error) {
	return paths.ResolveAssetDir(flagAssetDir, configAssetDir)
}
