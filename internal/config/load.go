package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ronylevy1/algo9/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// hclRunFile represents the top-level structure of a run file for decoding.
type hclRunFile struct {
	Seed        *int64     `hcl:"seed,optional"`
	SampleSize  *int       `hcl:"sample_size,optional"`
	LeftPool    []string   `hcl:"left_pool,optional"`
	RightPool   []string   `hcl:"right_pool,optional"`
	MaxAttempts *int       `hcl:"max_attempts,optional"`
	Workers     *int       `hcl:"workers,optional"`
	Output      *hclOutput `hcl:"output,block"`
}

type hclOutput struct {
	Format    *string `hcl:"format,optional"`
	Snapshots *bool   `hcl:"snapshots,optional"`
}

// Load parses and decodes the HCL file at path on top of Default().
// The result is not validated; call Validate after applying overrides.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading run configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(ctx, file, path)
}

// Parse is Load for in-memory sources; filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(ctx, file, filename)
}

func decode(ctx context.Context, file *hcl.File, filename string) (*Config, error) {
	var parsed hclRunFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	if parsed.Seed != nil {
		cfg.Seed = *parsed.Seed
	}
	if parsed.SampleSize != nil {
		cfg.SampleSize = *parsed.SampleSize
	}
	if parsed.LeftPool != nil {
		cfg.LeftPool = parsed.LeftPool
	}
	if parsed.RightPool != nil {
		cfg.RightPool = parsed.RightPool
	}
	if parsed.MaxAttempts != nil {
		cfg.MaxAttempts = *parsed.MaxAttempts
	}
	if parsed.Workers != nil {
		cfg.Workers = *parsed.Workers
	}
	if out := parsed.Output; out != nil {
		if out.Format != nil {
			cfg.Output.Format = *out.Format
		}
		if out.Snapshots != nil {
			cfg.Output.Snapshots = *out.Snapshots
		}
	}

	ctxlog.FromContext(ctx).Debug("Run configuration decoded.", "file", filename, "seed", cfg.Seed,
		"sample_size", cfg.SampleSize, "format", cfg.Output.Format)
	return cfg, nil
}

// evalContext exposes the built-in defaults and a small function library.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"seed":         cty.NumberIntVal(DefaultSeed),
				"sample_size":  cty.NumberIntVal(DefaultSampleSize),
				"max_attempts": cty.NumberIntVal(DefaultMaxAttempts),
				"left_pool":    stringList(defaultLeftPool),
				"right_pool":   stringList(defaultRightPool),
			}),
		},
		Functions: map[string]function.Function{
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
			"format":   stdlib.FormatFunc,
			"length":   stdlib.LengthFunc,
			"lower":    stdlib.LowerFunc,
			"reverse":  stdlib.ReverseListFunc,
			"slice":    stdlib.SliceFunc,
			"upper":    stdlib.UpperFunc,
		},
	}
}

func stringList(ss []string) cty.Value {
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
