package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/TouchBistro/giveup/cli"
	"github.com/TouchBistro/giveup/cli/commands"
	"github.com/TouchBistro/giveup/fatal"
	"github.com/TouchBistro/giveup/hint"
)

// Set by goreleaser when release build is created.
var version string

func main() {
	// Set version if built from source
	if version == "" {
		version = "source"
		if info, available := debug.ReadBuildInfo(); available {
			version = info.Main.Version
		}
	}

	// Listen for SIGINT to do a graceful abort
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	abort := make(chan os.Signal, 1)
	signal.Notify(abort, os.Interrupt)
	go func() {
		<-abort
		cancel()
	}()

	c := cli.Container{
		Exiter: fatal.Default,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	rootCmd := commands.NewRootCommand(&c, version)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	switch {
	case errors.As(err, &exitErr):
		// Nothing to do, since exitErr is now populated
	case errors.Is(err, context.Canceled):
		exitErr = &cli.ExitError{Message: "Operation cancelled"}
	default:
		// Errors not created by commands come from cobra, such as unknown flags.
		exitErr = &cli.ExitError{
			Message: "Error",
			Err:     hint.WithExample(hint.Wrap(err, "See the usage of giveup"), "giveup --help"),
		}
	}
	// Deferred functions are not run by os.Exit.
	cancel()
	c.Exit(exitErr)
}
