// bananalike runs the BananaLike movement demo in the current terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bananalike/internal/config"
	"bananalike/internal/game"
	"bananalike/internal/telemetry"
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

	// The screen owns the terminal, so logs go to a file or nowhere.
	closeLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Trace {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("shutdown telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg.Seed)
	if err != nil {
		return err
	}
	g.Run(ctx)
	return nil
}

// redirectLog points the standard logger at path, or discards output when
// path is empty.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
