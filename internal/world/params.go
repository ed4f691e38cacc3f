package world

// AttemptsPerIsland bounds placement retries: a world with N islands gives up
// after N*AttemptsPerIsland candidates.
const AttemptsPerIsland = 60

// Coastline synthesis constants. Changing any of them changes every world
// generated from a given seed.
const (
	MinCoastSamples = 48  // inclusive
	MaxCoastSamples = 72  // exclusive
	MinCoastFactor  = 0.7 // safety band for the radius multiplier
	MaxCoastFactor  = 1.3

	BeachFactor  = 0.92
	GrassFactor  = 0.78
	CanopyFactor = 0.6
	RingJitter   = 0.03
)

// harmonic frequencies and amplitude ranges, from large-scale to fine undulation.
var harmonics = [...]struct {
	freq           float64
	ampLo, ampHigh float64
}{
	{2, 0.05, 0.12},
	{3, 0.03, 0.08},
	{5, 0.02, 0.05},
	{8, 0.01, 0.03},
}

// Params configures world generation.
type Params struct {
	Width          float64 // World width in world units
	Height         float64 // World height in world units
	IslandCount    int     // Requested number of islands
	MinRadius      float64 // Smallest base island radius
	MaxRadius      float64 // Largest base island radius
	MinGap         float64 // Clearance between island base circles
	EdgeMargin     float64 // Clearance between islands and world bounds
	SpawnClearance float64 // Open water kept around the boat spawn point
	WaveCount      int     // Number of ambient wave emitters
}

// DefaultParams returns the default world parameters.
func DefaultParams() Params {
	return Params{
		Width:          3600,
		Height:         3600,
		IslandCount:    16,
		MinRadius:      110,
		MaxRadius:      260,
		MinGap:         160,
		EdgeMargin:     80,
		SpawnClearance: 120,
		WaveCount:      64,
	}
}

// MaxAttempts returns the placement budget for these parameters.
func (p Params) MaxAttempts() int {
	return p.IslandCount * AttemptsPerIsland
}
