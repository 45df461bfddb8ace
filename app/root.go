// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/internal/logger"
)

const (
	envPrefix     = "TAILNAV"
	configPathKey = "config_path"
)

var rootCmd = &cobra.Command{
	Use:   "tailnav",
	Short: "tailnav renders a responsive Tailwind navigation bar",
	Long: `tailnav renders a responsive Tailwind navigation bar with brand,
collapsible menu, nested items and active state detection.
It serves a demo site or prints the markup of the configured menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("config", "./etc/", "directory holding main.toml")

	// TAILNAV_CONFIG_PATH overrides the default of --config
	_ = viper.BindPFlag(configPathKey, rootCmd.PersistentFlags().Lookup("config"))
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config and initializes the logger.
func loadConfig() (config.Config, error) {
	path := viper.GetString(configPathKey)
	if path != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	cfg, err := config.ReadConfig(path)
	if err != nil {
		return cfg, err //nolint:wrapcheck
	}

	if err = logger.Init(cfg.Log); err != nil {
		return cfg, err //nolint:wrapcheck
	}

	return cfg, nil
}
