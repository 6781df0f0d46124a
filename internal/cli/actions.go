package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/action"
	"github.com/steviee/go-gitmoji/internal/plugin"
)

// ActionData describes an action for JSON output
type ActionData struct {
	action.Definition
	Default bool `json:"default"`
}

// NewActionsCommand creates the actions command
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List the copy actions",
		Long: `List the actions that can be applied to a gitmoji.

The default action is used when no action is chosen explicitly and is set
with main.default_copy_action.`,
		Example: `  go-gitmoji actions`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActions(cmd.OutOrStdout(), viper.GetString(plugin.KeyDefaultCopyAction))
		},
	}

	return cmd
}

// runActions prints the action list
func runActions(stdout io.Writer, defaultName string) error {
	def := action.KindOrDefault(defaultName)

	defs := action.Definitions()
	data := make([]ActionData, len(defs))
	for i, d := range defs {
		data[i] = ActionData{Definition: d, Default: d.Kind == def}
	}

	if IsJSONOutput() {
		return outputSuccess(stdout, data)
	}

	_, _ = fmt.Fprintf(stdout, "%-12s %-18s %s\n", "NAME", "LABEL", "DESCRIPTION")
	for _, d := range data {
		name := d.Name
		if d.Default {
			name += "*"
		}
		_, _ = fmt.Fprintf(stdout, "%-12s %-18s %s\n", name, d.Label, d.ShortDesc)
	}
	_, _ = fmt.Fprintln(stdout, "\n* default action")
	return nil
}
