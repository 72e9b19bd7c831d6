package cli

import (
	"github.com/spf13/cobra"

	"github.com/handiism/artic-table/internal/server"
	"github.com/handiism/artic-table/internal/table"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the artwork table over HTTP",
		Long: `Starts an HTTP server holding one artwork table.

The JSON API pages, selects and bulk-selects rows exactly like the terminal
table, and /metrics exposes Prometheus metrics for upstream requests.`,
		Example: `  # Serve on the configured address (default :8080)
  artic serve

  # Serve on a custom address
  artic serve --addr 127.0.0.1:3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := opts.settings
			if addr != "" {
				settings.ServerAddr = addr
			}

			store := table.NewStore(settings.PageSize, newExecutor(settings, nil))
			store.Init(cmd.Context())

			return server.New(store, settings.AllowedOrigins).ListenAndServe(cmd.Context(), settings.ServerAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on, overrides config")

	return cmd
}
