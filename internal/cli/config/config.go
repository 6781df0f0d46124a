package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/steviee/go-gitmoji/internal/state"
	"gopkg.in/yaml.v3"
)

// Output is the JSON envelope used by the config commands
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewCommand creates the config command group. jsonMode reports whether
// the global --json flag is set.
func NewCommand(jsonMode func() bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and initialize go-gitmoji configuration.

Configuration is stored in ~/.config/go-gitmoji/config.yaml by default
($XDG_CONFIG_HOME is honoured). Every key can also be set through an
environment variable prefixed with GITMOJI_, for example
GITMOJI_MAIN_DEFAULT_COPY_ACTION=copy_emoji.`,
		Example: `  # Write a config file with the defaults
  go-gitmoji config init

  # View current configuration
  go-gitmoji config show

  # Show configuration file path
  go-gitmoji config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(newInitCommand(jsonMode))
	cmd.AddCommand(newShowCommand(jsonMode))
	cmd.AddCommand(newPathCommand(jsonMode))

	return cmd
}

func newInitCommand(jsonMode func() bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), cmd.OutOrStdout(), jsonMode(), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func newShowCommand(jsonMode func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration file contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), cmd.OutOrStdout(), jsonMode())
		},
	}
}

func newPathCommand(jsonMode func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := state.GetConfigPath()
			if err != nil {
				return outputError(cmd.OutOrStdout(), jsonMode(), err)
			}
			if jsonMode() {
				return writeJSON(cmd.OutOrStdout(), Output{Status: "success", Data: map[string]string{"path": path}})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// runInit writes the default configuration
func runInit(ctx context.Context, stdout io.Writer, jsonMode, force bool) error {
	path, err := state.GetConfigPath()
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return outputError(stdout, jsonMode, fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
	}

	if err := state.InitDirs(); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if err := state.SaveConfig(ctx, state.DefaultConfig()); err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if jsonMode {
		return writeJSON(stdout, Output{Status: "success", Message: "config written", Data: map[string]string{"path": path}})
	}
	_, _ = fmt.Fprintf(stdout, "Wrote default configuration to %s\n", path)
	return nil
}

// runShow prints the configuration, creating the file when missing
func runShow(ctx context.Context, stdout io.Writer, jsonMode bool) error {
	cfg, err := state.LoadConfig(ctx)
	if err != nil {
		return outputError(stdout, jsonMode, err)
	}

	if jsonMode {
		return writeJSON(stdout, Output{Status: "success", Data: cfg})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputError(w io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		_ = writeJSON(w, Output{Status: "error", Error: err.Error()})
	}
	return err
}
