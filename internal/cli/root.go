package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/go-gitmoji/internal/cli/config"
	"github.com/steviee/go-gitmoji/internal/state"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger *slog.Logger
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-gitmoji",
		Short: "Search gitmoji and copy them to your clipboard",
		Long: `go-gitmoji searches the gitmoji catalog and copies either the :code:
or the emoji itself to your clipboard.

The catalog is downloaded from the gitmoji project and cached locally.
The cache is refreshed automatically once it is older than the configured
number of days (7 by default). Searches match the code and the description,
ignoring case.`,
		Example: `  # Search for gitmoji
  go-gitmoji search bug

  # Copy the code of a gitmoji
  go-gitmoji copy :bug:

  # Copy the emoji glyph instead
  go-gitmoji copy :bug: --emoji

  # Open the interactive picker
  go-gitmoji pick

  # Force a cache refresh
  go-gitmoji cache refresh`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger based on flags
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Initialize config
			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/go-gitmoji/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	// Mark json and quiet as mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewCopyCommand())
	rootCmd.AddCommand(NewPickCommand())
	rootCmd.AddCommand(NewActionsCommand())
	rootCmd.AddCommand(NewRecentCommand())
	rootCmd.AddCommand(NewCacheCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	return config.NewCommand(IsJSONOutput)
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	var level slog.Level
	var handler slog.Handler

	// Determine log level
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if jsonOut {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// setDefaults registers every configuration key with its default value so
// that environment variables are honoured even without a config file.
func setDefaults(v *viper.Viper) {
	def := state.DefaultConfig()

	v.SetDefault("main.default_copy_action", def.Main.DefaultCopyAction)
	v.SetDefault("main.match_mode", def.Main.MatchMode)
	v.SetDefault("main.notify", def.Main.Notify)
	v.SetDefault("cache.url", def.Cache.URL)
	v.SetDefault("cache.max_age_days", def.Cache.MaxAgeDays)
	v.SetDefault("cache.timeout", def.Cache.Timeout)
	v.SetDefault("catalog.require_entity", def.Catalog.RequireEntity)
	v.SetDefault("clipboard.backend", def.Clipboard.Backend)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.path", def.History.Path)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return fmt.Errorf("get config directory: %w", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// GITMOJI_CACHE_MAX_AGE_DAYS overrides cache.max_age_days
	viper.SetEnvPrefix("GITMOJI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quiet
}
