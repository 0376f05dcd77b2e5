// Package main is the entry point for the mdpad CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Load .env from the working directory so MDPAD_* settings can live there.
	_ "github.com/joho/godotenv/autoload"

	"github.com/yaklabco/mdpad/internal/cli"
	"github.com/yaklabco/mdpad/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Signal errors only select the exit code.
		if !cli.IsSignal(err) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
