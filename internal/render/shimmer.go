package render

import (
	"github.com/ojrac/opensimplex-go"
)

// shimmerSeed is fixed so the water texture never consumes world randomness.
const shimmerSeed = 0x5ea

// Shimmer is an animated open-water texture.
type Shimmer struct {
	noise opensimplex.Noise
	scale float64 // World units per noise unit
	speed float64 // Noise units per second along the time axis
}

// NewShimmer creates the water texture.
func NewShimmer() *Shimmer {
	return &Shimmer{
		noise: opensimplex.New(shimmerSeed),
		scale: 90,
		speed: 0.25,
	}
}

// At returns the texture value in [-1, 1] at a world position and time.
func (s *Shimmer) At(x, y, t float64) float64 {
	return s.noise.Eval3(x/s.scale, y/s.scale, t*s.speed)
}

// Glint returns the rune for a water cell, or 0 for plain water.
func (s *Shimmer) Glint(x, y, t float64) rune {
	switch v := s.At(x, y, t); {
	case v > 0.55:
		return '~'
	case v > 0.35:
		return '·'
	default:
		return 0
	}
}
