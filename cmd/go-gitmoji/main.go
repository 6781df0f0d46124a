package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/steviee/go-gitmoji/internal/cli"
)

// Version information (set by ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	BuiltBy   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, Commit, BuildTime, BuiltBy)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// JSON mode already printed an error envelope.
		if !cli.IsJSONOutput() {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		stop()
		os.Exit(1)
	}
}
