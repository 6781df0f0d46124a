package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/go-gitmoji/internal/gitmoji"
)

// VersionInfo contains version information for the application
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	SourceURL string `json:"source_url"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date, builtBy string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version information including build commit, date and the default gitmoji source.",
		Example: `  # Display version information
  go-gitmoji version

  # Output in JSON format
  go-gitmoji version --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   version,
				Commit:    commit,
				Date:      date,
				BuiltBy:   builtBy,
				SourceURL: gitmoji.DefaultURL,
			}
			if IsJSONOutput() {
				return outputSuccess(cmd.OutOrStdout(), info)
			}
			return printVersionText(cmd.OutOrStdout(), info)
		},
	}

	return cmd
}

// printVersionText prints version information in human-readable format
func printVersionText(w io.Writer, info VersionInfo) error {
	_, err := fmt.Fprintf(w, "go-gitmoji version %s\nCommit: %s\nBuilt: %s\nBuilt by: %s\nSource: %s\n",
		info.Version, info.Commit, info.Date, info.BuiltBy, info.SourceURL)
	if err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	return nil
}
