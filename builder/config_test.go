// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
	assert.Zero(t, cfg.drawFn(nil), "UniformDraw with nil rng")
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	explicit := rand.New(rand.NewSource(5))
	cfg := newBuilderConfig(WithSeed(1), WithRand(explicit), WithSymbolIDs(), WithDefaultIDs())
	assert.Same(t, explicit, cfg.rng)
	assert.Equal(t, "3", cfg.idFn(3))

	cfg = newBuilderConfig(WithPartitionPrefix("", "Col"))
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, "Col", cfg.rightPrefix)
}

func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotSame(t, a.rng, b.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Float64(), b.rng.Float64())
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithDrawFn(nil) })
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { ConstantDraw(-1) })
	assert.Panics(t, func() { SequenceDraw() })
}

func TestNormalizeColumn(t *testing.T) {
	t.Parallel()

	got, err := normalizeColumn("T", "r", []float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, got)

	_, err = normalizeColumn("T", "r", []float64{0, 0, 0, 0})
	require.ErrorIs(t, err, ErrDegenerateDistribution)
}
