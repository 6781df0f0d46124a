package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/action"
)

// CopyResultData holds the copy result for JSON output
type CopyResultData struct {
	Code   string `json:"code"`
	Text   string `json:"text"`
	Action string `json:"action"`
}

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	var (
		emoji      bool
		code       bool
		actionName string
	)

	cmd := &cobra.Command{
		Use:   "copy <code>",
		Short: "Copy a gitmoji to the clipboard",
		Long: `Copy a gitmoji to the clipboard.

By default the configured default action is used (main.default_copy_action,
copy_code unless set). Use --emoji or --code to choose explicitly. The
surrounding colons of the code are optional.`,
		Example: `  # Copy the code
  go-gitmoji copy :bug:

  # Copy the emoji glyph
  go-gitmoji copy bug --emoji

  # Use an action by name
  go-gitmoji copy sparkles --action copy_emoji`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := actionName
			switch {
			case emoji:
				name = action.CopyEmoji.String()
			case code:
				name = action.CopyCode.String()
			}
			return runCopy(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], name)
		},
	}

	cmd.Flags().BoolVarP(&emoji, "emoji", "e", false, "copy the emoji glyph")
	cmd.Flags().BoolVarP(&code, "code", "c", false, "copy the :code:")
	cmd.Flags().StringVarP(&actionName, "action", "a", "", "action name (copy_code or copy_emoji)")
	cmd.MarkFlagsMutuallyExclusive("emoji", "code", "action")

	return cmd
}

// normalizeCode adds the surrounding colons when they are missing
func normalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, ":") {
		s = ":" + s
	}
	if !strings.HasSuffix(s, ":") || len(s) == 1 {
		s += ":"
	}
	return s
}

// runCopy executes the copy command
func runCopy(ctx context.Context, stdout, stderr io.Writer, code, actionName string) error {
	a, err := newApp(viper.GetViper(), clipboardOutput(stdout, stderr))
	if err != nil {
		return outputError(stdout, err)
	}
	defer a.Close()

	if err := a.start(ctx); err != nil {
		return outputError(stdout, err)
	}

	entry, ok := a.plugin.Lookup(normalizeCode(code))
	if !ok {
		return outputError(stdout, fmt.Errorf("unknown gitmoji %q; try 'go-gitmoji search %s'", code, strings.Trim(code, ":")))
	}

	res, err := a.plugin.OnExecute(ctx, entry, actionName)
	if err != nil {
		return outputError(stdout, err)
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
