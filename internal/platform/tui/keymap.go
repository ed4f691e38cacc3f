package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
const DefaultHoldWindow = 500 * time.Millisecond

// SailKeyMap defines the key bindings for a sailing session.
type SailKeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	Left       key.Binding
	Right      key.Binding
	Edit       key.Binding
	NewSeed    key.Binding
	Share      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Edit, k.NewSeed, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right},
		{k.Edit, k.NewSeed, k.Share, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultSailKeyMap returns default key bindings.
func DefaultSailKeyMap() SailKeyMap {
	return SailKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "raise sail"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "lower sail"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "port"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "starboard"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "/"),
			key.WithHelp("e", "edit seed"),
		),
		NewSeed: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new seed"),
		),
		Share: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy seed"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CommandFor maps a key message to a movement command.
func (k SailKeyMap) CommandFor(msg tea.KeyMsg) (core.Command, bool) {
	switch {
	case key.Matches(msg, k.Forward):
		return core.CommandForward, true
	case key.Matches(msg, k.Backward):
		return core.CommandBackward, true
	case key.Matches(msg, k.Left):
		return core.CommandLeft, true
	case key.Matches(msg, k.Right):
		return core.CommandRight, true
	}
	return 0, false
}

// HeldKeys turns discrete key presses into held commands. Terminals only
// report presses and auto-repeats, so a command stays held for the hold
// window after its most recent press.
type HeldKeys struct {
	window  time.Duration
	pressed [len(core.AllCommands)]time.Time
}

// NewHeldKeys creates a collector. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return HeldKeys{window: window}
}

// Press records a press of cmd at now and releases its opposite.
func (h *HeldKeys) Press(cmd core.Command, now time.Time) {
	if int(cmd) < 0 || int(cmd) >= len(h.pressed) {
		return
	}
	h.pressed[cmd] = now
	h.pressed[cmd.Opposite()] = time.Time{}
}

// Clear releases every command.
func (h *HeldKeys) Clear() {
	h.pressed = [len(core.AllCommands)]time.Time{}
}

// Commands returns the commands held at now.
func (h HeldKeys) Commands(now time.Time) core.Commands {
	var cmds core.Commands
	for _, cmd := range core.AllCommands {
		at := h.pressed[cmd]
		if at.IsZero() {
			continue
		}
		if age := now.Sub(at); age >= 0 && age < h.window {
			cmds.Set(cmd)
		}
	}
	return cmds
}
