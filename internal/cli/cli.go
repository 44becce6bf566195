// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ronylevy1/algo9/internal/app"
	"github.com/ronylevy1/algo9/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Run-file values are overridden only by flags the user actually set.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("greedymatch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
greedymatch - greedy randomized matchings on a random weighted bipartite graph.

Usage:
  greedymatch [options] [RUN_FILE]

Arguments:
  RUN_FILE
    Optional .hcl run configuration. Flags override its values.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the .hcl run configuration.")
	cFlag := flagSet.String("c", "", "Path to the .hcl run configuration (shorthand).")
	seedFlag := flagSet.Int64("seed", config.DefaultSeed, "Seed for label sampling, weights and matching.")
	sampleFlag := flagSet.Int("sample-size", config.DefaultSampleSize, "Nodes sampled per side.")
	attemptsFlag := flagSet.Int("max-attempts", config.DefaultMaxAttempts, "Bound on reruns while looking for a different second matching.")
	workersFlag := flagSet.Int("workers", 1, "Parallel reruns per batch; 1 reruns sequentially.")
	formatFlag := flagSet.String("format", config.FormatText, "Report format. Options: 'text', 'yaml' or 'json'.")
	snapshotsFlag := flagSet.Bool("snapshots", false, "Include every stage of both runs in the report.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one RUN_FILE, got %d", flagSet.NArg())}
	}

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Run file determined.", "path", path)

	var overrides []config.Override
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			v := *seedFlag
			overrides = append(overrides, func(c *config.Config) { c.Seed = v })
		case "sample-size":
			v := *sampleFlag
			overrides = append(overrides, func(c *config.Config) { c.SampleSize = v })
		case "max-attempts":
			v := *attemptsFlag
			overrides = append(overrides, func(c *config.Config) { c.MaxAttempts = v })
		case "workers":
			v := *workersFlag
			overrides = append(overrides, func(c *config.Config) { c.Workers = v })
		case "format":
			v := strings.ToLower(*formatFlag)
			overrides = append(overrides, func(c *config.Config) { c.Output.Format = v })
		case "snapshots":
			v := *snapshotsFlag
			overrides = append(overrides, func(c *config.Config) { c.Output.Snapshots = v })
		}
	})

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: path,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Overrides:  overrides,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "overrides", len(overrides))
	return appConfig, false, nil
}
