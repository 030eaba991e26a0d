// Package main is the entry point for the arcade launcher.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/samdwyer/arcade/internal/app"
	"github.com/samdwyer/arcade/internal/config"
	"github.com/samdwyer/arcade/internal/games"
	"github.com/samdwyer/arcade/internal/screen"
	"github.com/samdwyer/arcade/internal/telemetry"
	"github.com/samdwyer/arcade/internal/tui"
)

func main() {
	// Load .env file for local development.
	// This makes HONEYCOMB_ARCADE_API_KEY available.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Launcher will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// While the alternate screen is active, stdout belongs to the TUI;
	// logs go to a file so they never corrupt it.
	closeLog := redirectLog()
	defer closeLog()

	if err := run(ctx); err != nil {
		// The terminal has been restored by the time we get here, so a
		// plain stderr message is safe.
		closeLog()
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("cannot resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	registry, err := games.LoadRegistry()
	if err != nil {
		return fmt.Errorf("cannot load game catalog: %w", err)
	}

	term, err := tui.NewTerminal(cfg.Mouse)
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}

	a := app.New(cfg, term)
	return a.Run(ctx, screen.NewWelcome(registry, cfg))
}

// redirectLog sends the standard logger to a per-user log file and returns
// a function restoring it to stderr.
func redirectLog() func() {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	path := filepath.Join(dir, "arcade", "arcade.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may carry an unexpanded variable reference, so the
	// header is assembled here.
	apiKey := os.Getenv("HONEYCOMB_ARCADE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ARCADE_DATASET")
	if dataset == "" {
		dataset = "arcade"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
