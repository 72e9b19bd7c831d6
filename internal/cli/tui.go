package cli

import (
	"github.com/spf13/cobra"

	"github.com/handiism/artic-table/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive artwork table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(opts.settings)
		},
	}
}
