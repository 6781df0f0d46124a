package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/cache"
)

// NewCacheCommand creates the cache command group
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and refresh the gitmoji cache",
		Long: `Inspect and refresh the locally cached gitmoji catalog.

The catalog is refreshed automatically when it is older than
cache.max_age_days calendar days. These commands show its state or force
a download.`,
		Example: `  # Show cache state
  go-gitmoji cache status

  # Download the catalog now
  go-gitmoji cache refresh

  # Print the cache file path
  go-gitmoji cache path`,
	}

	cmd.AddCommand(newCacheStatusCommand())
	cmd.AddCommand(newCacheRefreshCommand())
	cmd.AddCommand(newCachePathCommand())

	return cmd
}

func newCacheStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, refresher, err := newCacheRefresher(viper.GetViper())
			if err != nil {
				return outputError(cmd.OutOrStdout(), err)
			}
			return outputCacheStatus(cmd.OutOrStdout(), refresher.Status(), time.Now())
		},
	}
}

func newCacheRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Download the catalog regardless of its age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheRefresh(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newCachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := newCacheRefresher(viper.GetViper())
			if err != nil {
				return outputError(cmd.OutOrStdout(), err)
			}
			if IsJSONOutput() {
				return outputSuccess(cmd.OutOrStdout(), map[string]string{"path": store.Path()})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

// runCacheRefresh forces a download of the catalog
func runCacheRefresh(ctx context.Context, stdout io.Writer) error {
	store, refresher, err := newCacheRefresher(viper.GetViper())
	if err != nil {
		return outputError(stdout, err)
	}

	n, err := refresher.Refresh(ctx)
	if err != nil {
		return outputError(stdout, err)
	}

	if IsJSONOutput() {
		return outputSuccess(stdout, map[string]interface{}{
			"path":    store.Path(),
			"records": n,
		})
	}
	if !IsQuiet() {
		_, _ = fmt.Fprintf(stdout, "Cached %d gitmoji in %s\n", n, store.Path())
	}
	return nil
}

// outputCacheStatus prints the cache state
func outputCacheStatus(stdout io.Writer, st cache.Status, now time.Time) error {
	if IsJSONOutput() {
		return outputSuccess(stdout, st)
	}

	_, _ = fmt.Fprintf(stdout, "Path:      %s\n", st.Path)
	if !st.Exists {
		_, _ = fmt.Fprintln(stdout, "State:     missing (will be downloaded on next use)")
		return nil
	}

	state := "fresh"
	if st.Stale {
		state = "stale (will be refreshed on next use)"
	}

	_, _ = fmt.Fprintf(stdout, "Size:      %s\n", units.HumanSize(float64(st.Size)))
	_, _ = fmt.Fprintf(stdout, "Modified:  %s (%s ago)\n", st.ModTime.Format(time.RFC3339), units.HumanDuration(now.Sub(st.ModTime)))
	_, _ = fmt.Fprintf(stdout, "Age:       %d day(s), max %d\n", st.AgeDays, st.MaxAgeDays)
	_, _ = fmt.Fprintf(stdout, "State:     %s\n", state)
	return nil
}
