package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/catalog"
)

// SearchResultData holds one search result for JSON output
type SearchResultData struct {
	Code        string `json:"code"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		fuzzy bool
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search gitmoji by code or description",
		Long: `Search the gitmoji catalog.

A gitmoji matches when the query is contained in its code or its
description, ignoring case. Results are sorted by code. An empty query
lists the whole catalog. With --fuzzy the characters of the query only
have to appear in order, and results are ranked by closeness.`,
		Example: `  # Search for gitmoji
  go-gitmoji search bug

  # Fuzzy search
  go-gitmoji search --fuzzy dcs

  # Get JSON output for scripting
  go-gitmoji search deploy --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), query, limit, fuzzy)
		},
	}

	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "use fuzzy matching")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum results to show (0 for all)")

	return cmd
}

// runSearch executes the search command
func runSearch(ctx context.Context, stdout io.Writer, query string, limit int, fuzzy bool) error {
	if limit < 0 {
		return outputError(stdout, fmt.Errorf("limit must not be negative"))
	}

	a, err := newApp(viper.GetViper(), stdout)
	if err != nil {
		return outputError(stdout, err)
	}
	defer a.Close()

	if err := a.start(ctx); err != nil {
		return outputError(stdout, err)
	}
	if fuzzy {
		a.plugin.SetMatchMode(catalog.MatchFuzzy)
	}

	results := a.plugin.Suggest(query)
	total := len(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if IsJSONOutput() {
		return outputSearchJSON(stdout, results, total)
	}
	return outputSearchTable(stdout, results, total)
}

// outputSearchTable outputs results in table format
func outputSearchTable(stdout io.Writer, results []catalog.Entry, total int) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(stdout, "No gitmoji found. Try a different search query.")
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-5s %-28s %s\n", "EMOJI", "CODE", "DESCRIPTION")
	_, _ = fmt.Fprintf(stdout, "%s\n", strings.Repeat("-", 80))

	for _, e := range results {
		// Glyph width varies between one and two cells.
		glyph := runewidth.FillRight(e.Glyph, 5)
		_, _ = fmt.Fprintf(stdout, "%s %-28s %s\n", glyph, e.Label, runewidth.Truncate(e.ShortDesc, 46, "..."))
	}

	if total > len(results) {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d results. Use --limit to see more.\n", len(results), total)
	} else {
		_, _ = fmt.Fprintf(stdout, "\nFound %d result(s).\n", total)
	}

	return nil
}

// outputSearchJSON outputs results in JSON format
func outputSearchJSON(stdout io.Writer, results []catalog.Entry, total int) error {
	data := make([]SearchResultData, len(results))
	for i, e := range results {
		data[i] = SearchResultData{
			Code:        e.Target,
			Emoji:       e.Glyph,
			Description: e.ShortDesc,
			Icon:        e.Icon,
		}
	}

	return outputSuccess(stdout, map[string]interface{}{
		"results": data,
		"count":   len(data),
		"total":   total,
	})
}
