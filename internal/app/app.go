package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ronylevy1/algo9/internal/codec"
	"github.com/ronylevy1/algo9/internal/config"
	"github.com/ronylevy1/algo9/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. The report goes to
// outW, log records to logW.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
	}
}

// Run loads the run configuration, executes both matchings and writes the
// report in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cfg, err := a.loadRunConfig(ctx)
	if err != nil {
		return err
	}
	exporter, err := codec.ForFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	report, err := Execute(ctx, cfg)
	if err != nil {
		var noDistinct *NoDistinctError
		if errors.As(err, &noDistinct) {
			a.logger.Warn("Giving up on a second matching.", "attempts", noDistinct.Attempts)
		}
		return err
	}

	if err := exporter.Export(report, a.outW); err != nil {
		return fmt.Errorf("failed to write %s report: %w", exporter.Format(), err)
	}
	a.logger.Info("Report written.", "format", exporter.Format(), "runs", len(report.Runs))
	return nil
}

func (a *App) loadRunConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.Default()
	if a.config.ConfigPath != "" {
		loaded, err := config.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Apply(a.config.Overrides...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.logger.Debug("Run configuration resolved.", "seed", cfg.Seed, "sample_size", cfg.SampleSize,
		"max_attempts", cfg.MaxAttempts, "workers", cfg.Workers, "format", cfg.Output.Format)
	return cfg, nil
}
