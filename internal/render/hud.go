package render

import (
	"fmt"

	"github.com/vovakirdan/tui-archipelago/internal/boat"
)

// FormatHUD renders the telemetry line.
func FormatHUD(t boat.Telemetry, seed string) string {
	return fmt.Sprintf("%5.1f kn  %03d°  %-15s  sail %3d%%  seed %s",
		t.Knots, t.Heading, t.Status, t.Sail, seed)
}
