package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ronylevy1/algo9/bipartite"
	"github.com/ronylevy1/algo9/internal/codec"
	"github.com/ronylevy1/algo9/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchingOf(run codec.Run) bipartite.Matching { return bipartite.Matching(run.Matching) }

func TestExecute_Default(t *testing.T) {
	cfg := config.Default()
	report, err := Execute(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(42), report.Seed)
	require.Len(t, report.Left, 4)
	require.Len(t, report.Right, 4)
	assert.Subset(t, cfg.LeftPool, report.Left)
	assert.Subset(t, cfg.RightPool, report.Right)
	assert.Len(t, report.Edges, 16)

	sums := map[string]float64{}
	for _, e := range report.Edges {
		sums[e.Right] += e.Weight
	}
	for r, s := range sums {
		assert.InDelta(t, 1.0, s, 1e-9, "column %s", r)
	}

	require.Len(t, report.Runs, 2)
	first, second := matchingOf(report.Runs[0]), matchingOf(report.Runs[1])
	for _, m := range []bipartite.Matching{first, second} {
		require.NoError(t, m.Validate())
		assert.ElementsMatch(t, report.Left, m.Lefts())
		assert.ElementsMatch(t, report.Right, m.Rights())
	}
	assert.False(t, first.SameAs(second))
	assert.Equal(t, 1, report.Runs[0].Attempts)
	assert.GreaterOrEqual(t, report.Runs[1].Attempts, 1)
	assert.Empty(t, report.Runs[0].Stages)
}

func TestExecute_Deterministic(t *testing.T) {
	for _, workers := range []int{1, 4} {
		cfg := config.Default()
		cfg.Workers = workers
		cfg.Output.Snapshots = true

		a, err := Execute(context.Background(), cfg)
		require.NoError(t, err)
		b, err := Execute(context.Background(), cfg)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("workers=%d: reports differ (-first +second):\n%s", workers, diff)
		}
		for _, run := range a.Runs {
			require.Len(t, run.Stages, len(run.Matching)+1)
			assert.Len(t, run.Stages[0].Edges, 16)
			assert.Empty(t, run.Stages[len(run.Stages)-1].Edges)
		}
		assert.False(t, matchingOf(a.Runs[0]).SameAs(matchingOf(a.Runs[1])), "workers=%d", workers)
	}
}

func TestExecute_NoDistinctMatching(t *testing.T) {
	// K1,1 has exactly one matching
	for _, workers := range []int{1, 3} {
		cfg := config.Default()
		cfg.SampleSize = 1
		cfg.MaxAttempts = 7
		cfg.Workers = workers

		_, err := Execute(context.Background(), cfg)
		require.ErrorIs(t, err, ErrNoDistinctMatching)
		var nd *NoDistinctError
		require.True(t, errors.As(err, &nd))
		assert.Equal(t, 7, nd.Attempts, "workers=%d", workers)
		assert.Contains(t, err.Error(), "after 7 attempts")
	}
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Execute(ctx, config.Default())
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Run(t *testing.T) {
	runFile := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(runFile, []byte(`
seed        = 7
sample_size = 3
output {
  format = "json"
}
`), 0o600))

	tests := []struct {
		name      string
		cfg       Config
		contains  []string
		logNeedle string
	}{
		{
			name:      "text defaults",
			cfg:       Config{LogFormat: "text", LogLevel: "info"},
			contains:  []string{"=== Matching 1 ===", "=== Matching 2 ===", " ↔ ", "(p="},
			logNeedle: "msg=\"Graph built.\"",
		},
		{
			name: "text with stages",
			cfg: Config{LogFormat: "text", LogLevel: "debug", Overrides: []config.Override{
				func(c *config.Config) { c.Output.Snapshots = true },
			}},
			contains:  []string{"Run 1 – Stage 0", "Run 2 – Stage 4", "(no edges)"},
			logNeedle: "msg=\"Edge accepted.\"",
		},
		{
			name:      "run file",
			cfg:       Config{ConfigPath: runFile, LogFormat: "json", LogLevel: "info"},
			contains:  []string{`"seed": 7`, `"total_weight"`},
			logNeedle: `"msg":"Report written."`,
		},
		{
			name: "override beats run file",
			cfg: Config{ConfigPath: runFile, LogFormat: "text", LogLevel: "info", Overrides: []config.Override{
				func(c *config.Config) { c.Output.Format = config.FormatYAML },
			}},
			contains:  []string{"seed: 7", "runs:", "total_weight:"},
			logNeedle: "format=yaml",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			cfg := tc.cfg
			require.NoError(t, NewApp(&out, &logs, &cfg).Run(context.Background()))
			for _, s := range tc.contains {
				assert.Contains(t, out.String(), s)
			}
			assert.Contains(t, logs.String(), tc.logNeedle)
			assert.False(t, strings.Contains(out.String(), "level="), "logs must not leak into the report")
		})
	}
}

func TestApp_RunErrors(t *testing.T) {
	var out, logs bytes.Buffer

	missing := &Config{ConfigPath: filepath.Join(t.TempDir(), "nope.hcl"), LogFormat: "text", LogLevel: "info"}
	require.Error(t, NewApp(&out, &logs, missing).Run(context.Background()))

	invalid := &Config{LogFormat: "text", LogLevel: "info", Overrides: []config.Override{
		func(c *config.Config) { c.SampleSize = 9 },
	}}
	require.ErrorIs(t, NewApp(&out, &logs, invalid).Run(context.Background()), config.ErrInvalidConfig)

	single := &Config{LogFormat: "text", LogLevel: "warn", Overrides: []config.Override{
		func(c *config.Config) { c.SampleSize = 1; c.MaxAttempts = 3 },
	}}
	err := NewApp(&out, &logs, single).Run(context.Background())
	require.ErrorIs(t, err, ErrNoDistinctMatching)
	assert.Contains(t, logs.String(), "Giving up on a second matching.")
	assert.Empty(t, out.String())
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{LogFormat: "text", LogLevel: "info"})
	require.NoError(t, err)
	_, err = NewConfig(Config{LogFormat: "xml", LogLevel: "info"})
	require.Error(t, err)
	_, err = NewConfig(Config{LogFormat: "json", LogLevel: "trace"})
	require.Error(t, err)
}
