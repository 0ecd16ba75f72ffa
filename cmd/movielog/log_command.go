package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"movielog/internal/catalog"
	"movielog/internal/importer"
	"movielog/internal/services"
	"movielog/internal/tmdb"
)

// maxLogCandidates caps the pick list; TMDB relevance drops off fast.
const maxLogCandidates = 10

func newLogCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "log [title]",
		Short: "Look up one movie on TMDB and add it to the library",
		Long: `Log searches TMDB for a single title, lets you pick the right match, and
records it with your status, rating, and notes. Run it right after watching
something, or without marking it watched to grow the to-watch pile.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.tmdbClient()
			if err != nil {
				return err
			}
			store, err := ctx.store()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prompts := newPrompter(cmd.InOrStdin(), out)

			title := ""
			if len(args) == 1 {
				title = strings.TrimSpace(args[0])
			}
			if title == "" {
				title = prompts.line("Movie title: ")
			}
			if title == "" {
				fmt.Fprintln(out, "No title given.")
				return nil
			}

			response, err := client.SearchMovie(cmd.Context(), title, "")
			if err != nil {
				return err
			}
			if len(response.Results) == 0 {
				fmt.Fprintf(out, "No TMDB matches for %q.\n", title)
				return nil
			}

			candidates := response.Results
			if len(candidates) > maxLogCandidates {
				candidates = candidates[:maxLogCandidates]
			}
			printCandidates(out, candidates)

			choice, ok := prompts.selection(len(candidates))
			if !ok {
				fmt.Fprintln(out, "Selection cancelled.")
				return nil
			}
			picked := candidates[choice-1]

			status := catalog.StatusToWatch
			rating := 0.0
			dateWatched := ""
			answer := strings.ToLower(prompts.line("Watched it already? [w/N]: "))
			if answer == "w" || answer == "watched" {
				status = catalog.StatusWatched
				dateWatched = time.Now().Format("2006-01-02")
				if value, err := strconv.ParseFloat(prompts.line("Rating (1-10, Enter to skip): "), 64); err == nil {
					rating = value
				}
			}
			notes := prompts.multiline("Notes (finish with an empty line):")

			resolver := importer.NewResolver(client, ctx.ensureLogger())
			resolved, err := resolver.ResolveID(cmd.Context(), picked.ID)
			if err != nil {
				return err
			}

			record := resolved.Record(status, rating, dateWatched)
			if _, err := store.Write(record, resolved.Body(notes)); err != nil {
				if errors.Is(err, services.ErrAlreadyExists) {
					fmt.Fprintf(out, "Already in the library: %s\n", record.Name)
					return nil
				}
				return err
			}
			fmt.Fprintf(out, "Added %s\n", record.Name)
			return nil
		},
	}
}

func printCandidates(out io.Writer, results []tmdb.Result) {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{result.Title, formatYear(catalog.Year(result.ReleaseDate))})
	}
	fmt.Fprintln(out, renderNumberedTable([]string{"Title", "Year"}, rows, nil, 0))
}

// prompter wraps line-oriented stdin prompting so tests can drive the
// interactive flow through a strings.Reader.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) line(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// selection reads a candidate number. Anything that is not a number in
// [1, max] reads as a cancel, never an error.
func (p *prompter) selection(max int) (int, bool) {
	raw := p.line(fmt.Sprintf("Select 1-%d (anything else cancels): ", max))
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > max {
		return 0, false
	}
	return value, true
}

func (p *prompter) multiline(prompt string) string {
	fmt.Fprintln(p.out, prompt)
	var lines []string
	for p.in.Scan() {
		line := p.in.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
