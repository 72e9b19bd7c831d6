package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/artic-table/internal/artic"
	ioutils "github.com/handiism/artic-table/internal/io"
)

func newPageCmd(opts *options) *cobra.Command {
	var (
		page   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of the artwork listing",
		Example: `  # First page as a table
  artic page

  # Page 3 as JSON
  artic page -p 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			loader := artic.NewPageLoader(newArticClient(opts.settings), opts.settings.PageSize)
			result, err := loader.LoadPage(cmd.Context(), page)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, pageJSON{
					Page:       result.Number,
					Limit:      result.Limit,
					Total:      result.Total,
					TotalPages: result.TotalPages,
					Data:       ioutils.NewRecords(result.Artworks),
				})
			}

			firstRow := (result.Number - 1) * loader.PageSize()
			fmt.Fprintln(out, renderTable(result.Artworks, firstRow))
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("page %d of %d, %d artworks total", result.Number, result.TotalPages, result.Total)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (1-based)")
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format (table or json)")

	return cmd
}
