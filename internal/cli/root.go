// Package cli implements the artic command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/artic-table/internal/config"
	"github.com/handiism/artic-table/internal/logging"
)

// options holds the global flags and the settings resolved from them.
type options struct {
	configPath string
	logLevel   string
	verbose    bool

	settings *config.Settings
}

// NewRootCmd builds the artic command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "artic",
		Short: "Browse and select artworks from the Art Institute of Chicago",
		Long: `artic pages through the Art Institute of Chicago artwork listing.

It can print a single page, gather the first N artworks the way the table's
bulk selection does, serve the table over HTTP, or open the interactive table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				settings.LogLevel = opts.logLevel
				if err := settings.Validate(); err != nil {
					return err
				}
			}
			opts.settings = settings

			logging.Setup(logging.Config{
				Level:  logging.LogLevel(settings.LogLevel),
				Pretty: true,
				Output: os.Stderr,
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose progress output")

	cmd.AddCommand(
		newPageCmd(opts),
		newGatherCmd(opts),
		newServeCmd(opts),
		newTUICmd(opts),
	)

	return cmd
}

// LoadSettings resolves settings the way every artic binary does: .env
// first, then the config file (defaults when path is empty or missing), then
// ARTIC_* variables. The result is validated.
func LoadSettings(path string) (*config.Settings, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	settings := config.DefaultSettings()
	if path != "" {
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
