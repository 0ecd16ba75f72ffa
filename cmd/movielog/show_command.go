package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"movielog/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one record exactly as stored",
		Long: `Show prints the raw Markdown record for one movie. Name the file base
("Parasite-2019", extension optional) or use the movie's exact title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(store.Path(args[0]))
			if errors.Is(err, fs.ErrNotExist) {
				data, err = readByTitle(cmd, store, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// readByTitle falls back to a case-insensitive exact title scan when the
// argument does not name a record file directly.
func readByTitle(cmd *cobra.Command, store *catalog.Store, title string) ([]byte, error) {
	records, err := store.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if strings.EqualFold(record.Title, title) {
			return os.ReadFile(store.Path(record.Name))
		}
	}
	return nil, fmt.Errorf("no record named %q in the library", title)
}
