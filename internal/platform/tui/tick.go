// Package tui provides the Bubble Tea front end for sailing sessions.
// It owns the frame loop, held-key input, and the seed editor.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the simulation by one frame.
// Gen identifies the loop that scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// frameLoop schedules generation-tagged ticks. Ticks from an older
// generation, or delivered after stop, are dropped by accept.
type frameLoop struct {
	fps     int
	gen     int
	running bool
}

func newFrameLoop(fps int) frameLoop {
	if fps <= 0 {
		fps = 30
	}
	return frameLoop{fps: fps}
}

// arm begins a new generation without scheduling a tick.
func (l *frameLoop) arm() {
	l.gen++
	l.running = true
}

// start begins a new generation and schedules its first tick.
func (l *frameLoop) start() tea.Cmd {
	l.arm()
	return l.next()
}

// next schedules the following tick of the current generation.
func (l *frameLoop) next() tea.Cmd {
	if !l.running {
		return nil
	}
	gen := l.gen
	interval := time.Second / time.Duration(l.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// stop invalidates every outstanding tick. Calling it twice is a no-op.
func (l *frameLoop) stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

func (l *frameLoop) accept(msg TickMsg) bool {
	return l.running && msg.Gen == l.gen
}
