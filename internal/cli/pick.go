package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/tui"
)

// NewPickCommand creates the interactive picker command
func NewPickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [query]",
		Short: "Pick a gitmoji interactively",
		Long: `Open an interactive picker over the gitmoji catalog.

Type to filter, use the arrow keys to move and press enter to copy with the
default action. ctrl+e copies the emoji, ctrl+y copies the code and esc quits.
Changes to the config file are picked up while the picker is open.`,
		Example: `  # Open the picker
  go-gitmoji pick

  # Open the picker with a query
  go-gitmoji pick fix`,
		Aliases: []string{"ui"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "))
		},
	}

	return cmd
}

// runPick executes the pick command
func runPick(ctx context.Context, stdout, stderr io.Writer, query string) error {
	a, err := newApp(viper.GetViper(), clipboardOutput(stdout, stderr))
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.start(ctx); err != nil {
		return err
	}

	// The picker draws on stderr so stdout stays free for the clipboard backend.
	picker := tui.NewPicker(ctx, a.plugin, query, tea.WithOutput(stderr), tea.WithAltScreen())

	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			slog.Debug("config file changed", "path", e.Name, "op", e.Op.String())
			picker.NotifyConfigChanged()
		})
		viper.WatchConfig()
	}

	res, err := picker.Run()
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	if IsJSONOutput() {
		return outputSuccess(stdout, CopyResultData{
			Code:   res.Code,
			Text:   res.Text,
			Action: res.Kind.String(),
		})
	}
	if !IsQuiet() {
		_, _ = fmt.Fprintf(stderr, "Copied %s to clipboard\n", res.Text)
	}
	return nil
}
