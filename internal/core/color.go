package core

// Color is a semantic palette entry for a screen cell.
// The platform decides how each entry maps onto terminal colors.
type Color uint8

// Palette entries, ordered roughly from open sea to foreground overlays.
const (
	ColorDefault Color = iota
	ColorDeepWater
	ColorWater
	ColorShallows
	ColorWave
	ColorWake
	ColorCoast
	ColorCliff
	ColorBeach
	ColorGrass
	ColorMeadow
	ColorCanopy
	ColorTree
	ColorStream
	ColorHull
	ColorSail
	ColorAnchor
	ColorText
	ColorMuted
)

// String returns the palette entry name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDeepWater:
		return "deep-water"
	case ColorWater:
		return "water"
	case ColorShallows:
		return "shallows"
	case ColorWave:
		return "wave"
	case ColorWake:
		return "wake"
	case ColorCoast:
		return "coast"
	case ColorCliff:
		return "cliff"
	case ColorBeach:
		return "beach"
	case ColorGrass:
		return "grass"
	case ColorMeadow:
		return "meadow"
	case ColorCanopy:
		return "canopy"
	case ColorTree:
		return "tree"
	case ColorStream:
		return "stream"
	case ColorHull:
		return "hull"
	case ColorSail:
		return "sail"
	case ColorAnchor:
		return "anchor"
	case ColorText:
		return "text"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// Colors returns every palette entry in declaration order.
func Colors() []Color {
	out := make([]Color, 0, int(ColorMuted)+1)
	for c := ColorDefault; c <= ColorMuted; c++ {
		out = append(out, c)
	}
	return out
}
