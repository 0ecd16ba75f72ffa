package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"movielog/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show watch-time, rating, and leaderboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 1 {
				return errors.New("--top must be >= 1")
			}
			store, err := ctx.store()
			if err != nil {
				return err
			}
			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats.Compute(records, top))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", stats.DefaultTop, "Leaderboard size for genres, directors, and languages")

	return cmd
}

func printStats(out io.Writer, summary *stats.Summary) {
	if summary.MoviesWatched == 0 {
		fmt.Fprintln(out, "No watched movies yet.")
		return
	}
	colorize := shouldColorize(out)

	printSection(out, "Overview", colorize)
	fmt.Fprintf(out, "  Movies watched: %d\n", summary.MoviesWatched)
	fmt.Fprintf(out, "  Total watch time: %.1f hours\n", summary.TotalHours)
	if summary.AverageRating > 0 {
		fmt.Fprintf(out, "  Average rating: %.2f\n", summary.AverageRating)
	} else {
		fmt.Fprintln(out, "  Average rating: n/a")
	}

	if len(summary.Ratings) > 0 {
		fmt.Fprintln(out)
		printSection(out, "Ratings", colorize)
		maxCount := stats.MaxCount(summary.Ratings)
		for _, bucket := range summary.Ratings {
			fmt.Fprintf(out, "  %2d %s %d\n", bucket.Rating, histogramBar(bucket.Count, maxCount), bucket.Count)
		}
	}

	printLeaderboard(out, "Top Genres", summary.TopGenres, colorize)
	printLeaderboard(out, "Top Directors", summary.TopDirectors, colorize)

	if len(summary.Decades) > 0 {
		fmt.Fprintln(out)
		printSection(out, "By Decade", colorize)
		for _, decade := range summary.Decades {
			fmt.Fprintf(out, "  %ds: %d\n", decade.Decade, decade.Count)
		}
	}

	printLeaderboard(out, "Top Languages", summary.TopLanguages, colorize)
}

func printSection(out io.Writer, title string, colorize bool) {
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
}

func printLeaderboard(out io.Writer, title string, counts []stats.LabelCount, colorize bool) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(out)
	printSection(out, title, colorize)
	for _, entry := range counts {
		fmt.Fprintf(out, "  %s: %d\n", entry.Label, entry.Count)
	}
}
