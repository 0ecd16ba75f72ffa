package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movielog/internal/catalog"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var page int
	var watched bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the to-watch pile (or the watched shelf)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.store()
			if err != nil {
				return err
			}
			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			view := catalog.BrowseView(records, watched)
			if len(view) == 0 {
				if watched {
					fmt.Fprintln(out, "No watched movies yet.")
				} else {
					fmt.Fprintln(out, "The to-watch pile is empty.")
				}
				return nil
			}

			start, end, effectivePage, pages := pageBounds(len(view), page, cfg.Browse.PageSize)
			rows := make([][]string, 0, end-start)
			for _, record := range view[start:end] {
				rows = append(rows, []string{record.Title, formatYear(record.Year), joinList(record.Genres)})
			}

			fmt.Fprintln(out, renderNumberedTable([]string{"Title", "Year", "Genres"}, rows, nil, start))
			fmt.Fprintf(out, "Page %d of %d (%d movies)\n", effectivePage, pages, len(view))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to display")
	cmd.Flags().BoolVar(&watched, "watched", false, "Show watched movies instead of the to-watch pile")

	return cmd
}
