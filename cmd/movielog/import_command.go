package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"movielog/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var skipHeader bool
	var delayMS int
	var retries int

	cmd := &cobra.Command{
		Use:   "import <spreadsheet.csv>",
		Short: "Import a CSV spreadsheet into the movie library",
		Long: `Import reads a CSV export of a movie spreadsheet, looks each title up on
TMDB, and writes one Markdown record per movie into the library directory.
Rows that cannot be used are skipped and summarized; a row never aborts the
rest of the import. Existing records are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("skip-header") {
				cfg.Import.SkipHeader = skipHeader
			}
			if cmd.Flags().Changed("delay") {
				if delayMS < 0 {
					return errors.New("--delay must be >= 0")
				}
				cfg.Import.DelayMS = delayMS
			}
			if cmd.Flags().Changed("retries") {
				if retries < 0 {
					return errors.New("--retries must be >= 0")
				}
				cfg.Import.RetryAttempts = retries
			}

			client, err := ctx.tmdbClient()
			if err != nil {
				return err
			}
			store, err := ctx.store()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			resolver := importer.NewResolver(client, logger,
				importer.WithRetries(cfg.Import.RetryAttempts, cfg.ImportDelay()))
			pipeline := importer.NewPipeline(cfg, store, resolver, logger)

			report, err := pipeline.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printImportReport(cmd, report, store.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipHeader, "skip-header", true, "Treat the first spreadsheet row as a header")
	cmd.Flags().IntVar(&delayMS, "delay", 0, "Milliseconds to wait between rows (overrides config)")
	cmd.Flags().IntVar(&retries, "retries", 0, "Extra attempts per failed TMDB request (overrides config)")

	return cmd
}

func printImportReport(cmd *cobra.Command, report *importer.Report, libraryDir string) {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Rows processed", strconv.Itoa(report.Processed)},
		{"Records written", strconv.Itoa(report.Written)},
		{"Already in library", strconv.Itoa(report.AlreadyExists)},
		{"Rows skipped", strconv.Itoa(report.Skipped)},
		{"No TMDB match", strconv.Itoa(report.NotFound)},
		{"Lookup failures", strconv.Itoa(report.LookupFailed)},
		{"Other failures", strconv.Itoa(report.Failed)},
	}
	fmt.Fprintln(out, renderTable([]string{"Import summary", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "Library: %s\n", libraryDir)
	if report.Problems() > 0 {
		fmt.Fprintf(out, "%d row(s) had problems; check the run log (run ID %s).\n", report.Problems(), report.RunID)
	}
}
