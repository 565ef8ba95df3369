// bananalike-window runs the BananaLike movement demo in an 80x50-cell
// desktop window.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bananalike/internal/config"
	"bananalike/internal/dice"
	"bananalike/internal/game"
	"bananalike/internal/generate"
	"bananalike/internal/telemetry"
	"bananalike/internal/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Trace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer shutdown(context.Background()) //nolint:errcheck
		}
	}

	state := game.NewState(ctx, generate.DefaultConfig(), dice.New(cfg.Seed))
	w, err := window.New(ctx, state)
	if err != nil {
		return err
	}
	return w.Run()
}
