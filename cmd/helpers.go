package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/papapumpkin/orbit/internal/config"
	"github.com/papapumpkin/orbit/internal/store"
	"github.com/papapumpkin/orbit/internal/telemetry"
	"github.com/papapumpkin/orbit/internal/ui"
)

func loadConfig() config.Config {
	return config.Load()
}

func newPrinter(cfg config.Config) *ui.Printer {
	return ui.New(cfg.Color)
}

// openStore opens (creating if needed) the database named by the
// config, making the parent directory on first use.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	dir := filepath.Dir(cfg.DBPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return store.Open(ctx, cfg.DBPath)
}

// newEmitter opens the telemetry stream. Telemetry is best-effort: a
// failure to open degrades to a nil no-op emitter with a warning.
func newEmitter(cfg config.Config, printer *ui.Printer) *telemetry.Emitter {
	dir := filepath.Dir(cfg.TelemetryPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			printer.Warn(fmt.Sprintf("telemetry disabled: %v", err))
			return nil
		}
	}
	em, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		printer.Warn(fmt.Sprintf("telemetry disabled: %v", err))
		return nil
	}
	return em
}
