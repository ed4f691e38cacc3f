package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrShareUnavailable is returned when there is no terminal to copy through.
var ErrShareUnavailable = errors.New("clipboard share unavailable")

// ShareSeed copies seed to the system clipboard by writing an OSC 52
// sequence to the terminal. term is the TERM of the client, used to wrap
// the sequence for screen.
func ShareSeed(w io.Writer, seed, term string) error {
	if w == nil {
		return ErrShareUnavailable
	}
	seq := osc52.New(seed)
	if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("share: cannot write clipboard sequence: %w", err)
	}
	return nil
}
