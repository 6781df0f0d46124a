package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/history"
)

// NewRecentCommand creates the recent command
func NewRecentCommand() *cobra.Command {
	var (
		limit int
		top   bool
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently copied gitmoji",
		Long: `Show the gitmoji you copied most recently, or with --top the ones you
copy most often. History is recorded unless history.enabled is false.`,
		Example: `  # Last ten copies
  go-gitmoji recent

  # Most used gitmoji
  go-gitmoji recent --top --limit 5

  # Forget the history
  go-gitmoji recent --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecent(cmd.Context(), cmd.OutOrStdout(), limit, top, clear)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "maximum entries to show")
	cmd.Flags().BoolVar(&top, "top", false, "show the most copied gitmoji")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete the history")
	cmd.MarkFlagsMutuallyExclusive("top", "clear")

	return cmd
}

// runRecent executes the recent command
func runRecent(ctx context.Context, stdout io.Writer, limit int, top, clear bool) error {
	if limit < 1 {
		return outputError(stdout, fmt.Errorf("limit must be at least 1"))
	}

	path, err := historyPath(viper.GetViper())
	if err != nil {
		return outputError(stdout, err)
	}

	h, err := history.Open(path)
	if err != nil {
		return outputError(stdout, err)
	}
	defer h.Close()

	switch {
	case clear:
		n, err := h.Clear(ctx)
		if err != nil {
			return outputError(stdout, err)
		}
		if IsJSONOutput() {
			return outputSuccess(stdout, map[string]int64{"deleted": n})
		}
		_, _ = fmt.Fprintf(stdout, "Deleted %d history entries.\n", n)
		return nil

	case top:
		usage, err := h.Usage(ctx, limit)
		if err != nil {
			return outputError(stdout, err)
		}
		if IsJSONOutput() {
			return outputSuccess(stdout, usage)
		}
		return outputUsageTable(stdout, usage, time.Now())

	default:
		entries, err := h.Recent(ctx, limit)
		if err != nil {
			return outputError(stdout, err)
		}
		if IsJSONOutput() {
			return outputSuccess(stdout, entries)
		}
		return outputRecentTable(stdout, entries, time.Now())
	}
}

// outputRecentTable prints recent copies
func outputRecentTable(stdout io.Writer, entries []history.Entry, now time.Time) error {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(stdout, "No gitmoji copied yet.")
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-28s %-12s %s\n", "CODE", "ACTION", "COPIED")
	for _, e := range entries {
		_, _ = fmt.Fprintf(stdout, "%-28s %-12s %s ago\n", e.Code, e.Action, units.HumanDuration(now.Sub(e.CopiedAt)))
	}
	return nil
}

// outputUsageTable prints copy counts
func outputUsageTable(stdout io.Writer, usage []history.Usage, now time.Time) error {
	if len(usage) == 0 {
		_, _ = fmt.Fprintln(stdout, "No gitmoji copied yet.")
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-28s %6s %s\n", "CODE", "COUNT", "LAST USED")
	for _, u := range usage {
		_, _ = fmt.Fprintf(stdout, "%-28s %6d %s ago\n", u.Code, u.Count, units.HumanDuration(now.Sub(u.LastUsed)))
	}
	return nil
}
