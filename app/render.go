package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/navbar"
)

func init() { //nolint: gochecknoinits
	renderCmd.Flags().StringVar(&renderPath, "path", "/", "current request path, marks the matching item active")
	renderCmd.Flags().StringVar(&renderItems, "items", "", "items file (toml, yaml or json), overrides the config menu")

	rootCmd.AddCommand(renderCmd)
}

var (
	renderPath  string
	renderItems string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print the navbar markup of the configured menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return renderNavbar(cmd.OutOrStdout(), &cfg, renderPath, renderItems)
		},
	}
)

// renderNavbar writes the navbar of cfg for path to w.
func renderNavbar(w io.Writer, cfg *config.Config, path, itemsFile string) error {
	items := cfg.Navbar.Items

	if itemsFile != "" {
		var err error
		if items, err = config.ReadItems(itemsFile); err != nil {
			return err //nolint:wrapcheck
		}
	}

	out, err := cfg.Navbar.Apply(navbar.NewScope().New()).
		CurrentPath(path).
		Items(items).
		Render()
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = fmt.Fprintln(w, out)

	return err //nolint:wrapcheck
}
