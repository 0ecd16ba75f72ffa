package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movielog/internal/catalog"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var by string
	var page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the library by title, director, actor, or keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := catalog.ParseField(by)
			if err != nil {
				return err
			}
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
			matches := catalog.Search(records, args[0], field)
			if len(matches) == 0 {
				fmt.Fprintf(out, "No matches for %q.\n", args[0])
				return nil
			}

			start, end, effectivePage, pages := pageBounds(len(matches), page, cfg.Browse.PageSize)
			rows := make([][]string, 0, end-start)
			for _, record := range matches[start:end] {
				rows = append(rows, []string{record.Title, formatYear(record.Year), record.Director, record.Status})
			}

			fmt.Fprintln(out, renderNumberedTable([]string{"Title", "Year", "Director", "Status"}, rows, nil, start))
			fmt.Fprintf(out, "Page %d of %d (%d matches)\n", effectivePage, pages, len(matches))
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", string(catalog.FieldKeyword), "Search field: title, director, actor, or keyword")
	cmd.Flags().IntVar(&page, "page", 1, "Page to display")

	return cmd
}
