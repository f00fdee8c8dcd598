// ABOUTME: CLI entry point for lunaterm with terminal crash recovery
// ABOUTME: Parses the subcommand, configures logging, and dispatches to the command runner

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/lunaterm/internal/config"
	ltlog "github.com/mauromedda/lunaterm/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the selected command.
func run(ctx context.Context, args cliArgs, stdout io.Writer) error {
	if args.verbose {
		ltlog.SetLevel(ltlog.LevelDebug)
	}

	switch args.command {
	case "version":
		fmt.Fprintf(stdout, "lunaterm %s (%s) built %s\n", version, commit, date)
		return nil
	case "themes":
		return runThemes(stdout, args.preview, args.pick)
	case "config":
		return runConfig(stdout, config.SettingsFile(), args.args)
	case "serve":
		return runServe(ctx, args)
	case "shell", "connect":
		closeLog, err := redirectLog(args.logFile)
		if err != nil {
			return err
		}
		defer closeLog()
		return runSession(ctx, args)
	}
	return fmt.Errorf("unknown command %q", args.command)
}

// redirectLog moves logging off the TTY the session is about to drive.
func redirectLog(path string) (func(), error) {
	if path == "" {
		path = config.LogFile()
		if err := config.EnsureDir(config.GlobalDir()); err != nil {
			return nil, fmt.Errorf("creating config dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	ltlog.SetOutput(f)
	return func() {
		ltlog.SetOutput(nil)
		_ = f.Close()
	}, nil
}
