package render

import (
	"fmt"

	husl "github.com/hsluv/hsluv-go"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// hsl is a perceptual HSLuv colour: hue in degrees, saturation and
// lightness in percent.
type hsl struct {
	h, s, l float64
}

// Palette entries share hues so equal lightness steps look equal on screen.
var tones = map[core.Color]hsl{
	core.ColorDefault:   {0, 0, 85},
	core.ColorDeepWater: {250, 70, 30},
	core.ColorWater:     {240, 65, 45},
	core.ColorShallows:  {210, 70, 62},
	core.ColorWave:      {230, 40, 80},
	core.ColorWake:      {220, 20, 92},
	core.ColorCoast:     {70, 45, 80},
	core.ColorCliff:     {40, 15, 55},
	core.ColorBeach:     {75, 60, 86},
	core.ColorGrass:     {120, 55, 62},
	core.ColorMeadow:    {100, 80, 78},
	core.ColorCanopy:    {135, 65, 42},
	core.ColorTree:      {140, 75, 30},
	core.ColorStream:    {220, 80, 65},
	core.ColorHull:      {30, 55, 45},
	core.ColorSail:      {60, 10, 97},
	core.ColorAnchor:    {15, 85, 55},
	core.ColorText:      {0, 0, 92},
	core.ColorMuted:     {0, 0, 55},
}

// Hex returns the terminal colour for a palette entry as #rrggbb.
func Hex(c core.Color) string {
	t, ok := tones[c]
	if !ok {
		t = tones[core.ColorDefault]
	}
	r, g, b := husl.HuslToRGB(t.h, t.s, t.l)
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// Palette returns the hex colour of every entry.
func Palette() map[core.Color]string {
	out := make(map[core.Color]string, len(tones))
	for _, c := range core.Colors() {
		out[c] = Hex(c)
	}
	return out
}

func channel(v float64) uint8 {
	return uint8(core.ClampF(v, 0, 1)*0xff + 0.5)
}
