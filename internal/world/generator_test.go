package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-archipelago/internal/rng"
)

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	a := FromSeed(p, "abc123")
	b := FromSeed(p, "abc123")

	require.Equal(t, a.Stats, b.Stats)
	require.Len(t, b.Islands, len(a.Islands))
	for i := range a.Islands {
		assert.Equal(t, a.Islands[i].Center, b.Islands[i].Center)
		assert.Equal(t, a.Islands[i].Coast, b.Islands[i].Coast)
		assert.Equal(t, a.Islands[i].Canopy, b.Islands[i].Canopy)
		assert.Equal(t, a.Islands[i].Trees, b.Islands[i].Trees)
	}
	assert.Equal(t, a.Waves, b.Waves)
	assert.Equal(t, a.Features, b.Features)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	p := DefaultParams()
	a := FromSeed(p, "alpha")
	b := FromSeed(p, "beta")

	require.NotEmpty(t, a.Islands)
	require.NotEmpty(t, b.Islands)
	assert.NotEqual(t, a.Islands[0].Center, b.Islands[0].Center)
}

func TestGenerateScenarioAbc123(t *testing.T) {
	p := DefaultParams()
	p.IslandCount = 16
	w := FromSeed(p, "abc123")

	assert.LessOrEqual(t, len(w.Islands), 16)
	assert.LessOrEqual(t, w.Stats.Attempts, 16*AttemptsPerIsland)
	assert.Equal(t, len(w.Islands), w.Stats.Placed)
	assert.Len(t, w.Waves, p.WaveCount)

	again := Generate(p, rng.New("abc123"))
	assert.Equal(t, w.Stats, again.Stats)
}

func TestGenerateKnownFirstIsland(t *testing.T) {
	w := FromSeed(DefaultParams(), "abc123")
	require.NotEmpty(t, w.Islands)

	first := w.Islands[0]
	assert.InDelta(t, 167.25916580995545, first.Radius, 1e-9)
	assert.InDelta(t, 1161.8638477402242, first.Center.X, 1e-9)
	assert.InDelta(t, 1161.4168299532707, first.Center.Y, 1e-9)

	// sample count, harmonics, one headland, no coves, then the first sample
	require.Len(t, first.Coast, 69)
	assert.InDelta(t, 0.012064388469749596, first.Coast[0].Angle, 1e-12)
}

func TestGenerateUnderSupply(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Height = 1400, 1400
	p.IslandCount = 40

	var w *World
	require.NotPanics(t, func() { w = FromSeed(p, "crowded") })

	assert.Less(t, len(w.Islands), 40)
	assert.True(t, w.Stats.Shortfall())
	assert.Equal(t, p.MaxAttempts(), w.Stats.Attempts)
}

func TestIslandsDoNotOverlap(t *testing.T) {
	p := DefaultParams()
	for _, seed := range []string{"abc123", "reef", "lagoon", "x"} {
		w := FromSeed(p, seed)
		for i := range w.Islands {
			for j := i + 1; j < len(w.Islands); j++ {
				a, b := &w.Islands[i], &w.Islands[j]
				d := a.Center.Dist(b.Center)
				assert.GreaterOrEqual(t, d, a.Radius+b.Radius+p.MinGap, "seed %q islands %d/%d", seed, i, j)
				assert.Greater(t, d, a.BoundRadius()+b.BoundRadius(), "seed %q coastlines %d/%d", seed, i, j)
			}
		}
	}
}

func TestSpawnIsOpenWater(t *testing.T) {
	p := DefaultParams()
	for _, seed := range []string{"abc123", "harbour", "storm"} {
		w := FromSeed(p, seed)
		for i := range w.Islands {
			is := &w.Islands[i]
			assert.Greater(t, is.Center.Dist(w.Spawn), is.BoundRadius(), "seed %q island %d", seed, i)
		}
	}
}

func TestIslandsInsideWorld(t *testing.T) {
	p := DefaultParams()
	w := FromSeed(p, "bounds")
	for i := range w.Islands {
		is := &w.Islands[i]
		assert.GreaterOrEqual(t, is.Center.X-is.Radius, p.EdgeMargin)
		assert.LessOrEqual(t, is.Center.X+is.Radius, p.Width-p.EdgeMargin)
		assert.GreaterOrEqual(t, is.Center.Y-is.Radius, p.EdgeMargin)
		assert.LessOrEqual(t, is.Center.Y+is.Radius, p.Height-p.EdgeMargin)
	}
}

func TestCoastlineShape(t *testing.T) {
	w := FromSeed(DefaultParams(), "coast")
	require.NotEmpty(t, w.Islands)

	for _, is := range w.Islands {
		n := len(is.Coast)
		assert.GreaterOrEqual(t, n, MinCoastSamples)
		assert.Less(t, n, MaxCoastSamples)

		prev := -1.0
		for _, pt := range is.Coast {
			assert.Greater(t, pt.Angle, prev, "angles must strictly increase")
			assert.Less(t, pt.Angle, 2*math.Pi)
			assert.GreaterOrEqual(t, pt.Radius, is.Radius*MinCoastFactor-1e-9)
			assert.LessOrEqual(t, pt.Radius, is.Radius*MaxCoastFactor+1e-9)
			prev = pt.Angle
		}
	}
}

func TestRingsNest(t *testing.T) {
	w := FromSeed(DefaultParams(), "rings")
	require.NotEmpty(t, w.Islands)

	for _, is := range w.Islands {
		require.Len(t, is.Beach, len(is.Coast))
		require.Len(t, is.Grass, len(is.Coast))
		require.Len(t, is.Canopy, len(is.Coast))
		for i := range is.Coast {
			assert.LessOrEqual(t, is.Beach[i].Radius, is.Coast[i].Radius)
			assert.LessOrEqual(t, is.Grass[i].Radius, is.Beach[i].Radius)
			assert.LessOrEqual(t, is.Canopy[i].Radius, is.Grass[i].Radius)
			assert.Greater(t, is.Canopy[i].Radius, 0.0)
		}
	}
}

func TestFeatureCache(t *testing.T) {
	w := FromSeed(DefaultParams(), "features")
	require.NotEmpty(t, w.Islands)

	for _, is := range w.Islands {
		assert.NotEmpty(t, w.Features.Lookup(is.ID, FeatureCliffs))
		assert.NotEmpty(t, w.Features.Lookup(is.ID, FeatureTrees))
		assert.NotEmpty(t, w.Features.Lookup(is.ID, FeatureMeadows))
		if len(is.Streams) > 0 {
			assert.NotEmpty(t, w.Features.Lookup(is.ID, FeatureStreams))
		}

		for _, tree := range w.Features.Lookup(is.ID, FeatureTrees) {
			limit := is.Canopy.RadiusAt(math.Atan2(tree.Y, tree.X))
			assert.LessOrEqual(t, tree.Len(), limit+1e-6, "tree outside canopy on island %d", is.ID)
		}
	}
	assert.Nil(t, w.Features.Lookup(len(w.Islands)+5, FeatureTrees))
}

func TestRingRadiusAt(t *testing.T) {
	ring := Ring{
		{Angle: 0, Radius: 10},
		{Angle: math.Pi / 2, Radius: 20},
		{Angle: math.Pi, Radius: 10},
		{Angle: 3 * math.Pi / 2, Radius: 20},
	}

	tests := []struct {
		angle    float64
		expected float64
	}{
		{0, 10},
		{math.Pi / 4, 15},
		{math.Pi / 2, 20},
		{7 * math.Pi / 4, 15},
		{-math.Pi / 4, 15},
		{2 * math.Pi, 10},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.expected, ring.RadiusAt(tc.angle), 1e-9, "RadiusAt(%v)", tc.angle)
	}

	assert.Equal(t, 0.0, Ring{}.RadiusAt(1))
	assert.Equal(t, 20.0, ring.MaxRadius())
}

func TestRadiusAtOffsetFirstSample(t *testing.T) {
	ring := Ring{
		{Angle: 0.5, Radius: 10},
		{Angle: math.Pi, Radius: 30},
	}
	// between last (π) and first (0.5 + 2π), wrapping through zero
	span := 0.5 + math.Pi
	mid := math.Pi + span/2
	assert.InDelta(t, 20, ring.RadiusAt(mid), 1e-9)
	assert.InDelta(t, 10+20*(0.25/(math.Pi-0.5)), ring.RadiusAt(0.75), 1e-9)
}

func TestAdvanceWaves(t *testing.T) {
	waves := []Wave{{Speed: 10, Phase: 0}}
	waves[0].Pos.X = 95

	AdvanceWaves(waves, 1, 100, 100)
	assert.InDelta(t, 5, waves[0].Pos.X, 1e-9)
	assert.InDelta(t, 2, waves[0].Phase, 1e-9)

	before := waves[0]
	AdvanceWaves(waves, 0, 100, 100)
	assert.Equal(t, before, waves[0])
}

func TestCloneWavesIndependent(t *testing.T) {
	w := FromSeed(DefaultParams(), "clone")
	c := CloneWaves(w.Waves)
	AdvanceWaves(c, 1, w.Width, w.Height)
	assert.NotEqual(t, w.Waves[0].Pos, c[0].Pos)
}
