package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/starwarp/internal/config"
	"github.com/tomz197/starwarp/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starwarp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	// The raw screen owns stdout, so logs only go to LOG_FILE when set.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "game",
		Level:           config.LogLevel(),
	})

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{Logger: logger}); err != nil {
		logger.Error("game ended with error", "err", err)
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
