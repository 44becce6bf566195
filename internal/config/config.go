package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a loaded or overridden configuration
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the report codecs.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Built-in defaults.
const (
	DefaultSeed        int64 = 42
	DefaultSampleSize        = 4
	DefaultMaxAttempts       = 1000
)

var (
	defaultLeftPool  = []string{"Ami", "Tami", "Rami", "Sami", "Yami", "Nami", "Lami"}
	defaultRightPool = []string{"A", "B", "C", "D", "E", "F"}
)

// Output controls how the report is rendered.
type Output struct {
	Format    string
	Snapshots bool
}

// Config is the fully resolved run configuration.
type Config struct {
	Seed        int64
	SampleSize  int
	LeftPool    []string
	RightPool   []string
	MaxAttempts int
	// Workers > 1 searches for the second matching in parallel batches.
	Workers int
	Output  Output
}

// Override mutates a Config after loading; the CLI uses these for flags.
type Override func(*Config)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Seed:        DefaultSeed,
		SampleSize:  DefaultSampleSize,
		LeftPool:    append([]string(nil), defaultLeftPool...),
		RightPool:   append([]string(nil), defaultRightPool...),
		MaxAttempts: DefaultMaxAttempts,
		Workers:     1,
		Output:      Output{Format: FormatText},
	}
}

// Apply runs every override in order.
func (c *Config) Apply(overrides ...Override) {
	for _, o := range overrides {
		if o != nil {
			o(c)
		}
	}
}

// Validate checks ranges, pool contents and the output format.
func (c *Config) Validate() error {
	var errs []error
	if c.SampleSize < 1 {
		errs = append(errs, fmt.Errorf("sample_size must be ≥ 1, got %d", c.SampleSize))
	}
	if err := checkPool("left_pool", c.LeftPool, c.SampleSize); err != nil {
		errs = append(errs, err)
	}
	if err := checkPool("right_pool", c.RightPool, c.SampleSize); err != nil {
		errs = append(errs, err)
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be ≥ 1, got %d", c.MaxAttempts))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be ≥ 0, got %d", c.Workers))
	}
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("output.format %q is not one of text, yaml, json", c.Output.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func checkPool(name string, pool []string, k int) error {
	if len(pool) < k {
		return fmt.Errorf("%s has %d labels, sample_size needs %d", name, len(pool), k)
	}
	seen := make(map[string]struct{}, len(pool))
	for _, id := range pool {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%s contains an empty label", name)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s contains %q twice", name, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
