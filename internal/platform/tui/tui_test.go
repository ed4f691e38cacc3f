package tui

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// testClock is a manually advanced time source.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, opts SailOptions) (SailModel, *testClock) {
	t.Helper()
	if opts.Config.Seed == "" {
		opts.Config = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: "abc123"}
	}
	clock := &testClock{t: time.Unix(1700000000, 0)}
	m := NewSailModel(opts)
	m.now = clock.now
	return m, clock
}

func update(t *testing.T, m SailModel, msg tea.Msg) (SailModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SailModel)
	require.True(t, ok)
	return sm, cmd
}

func TestFrameLoopGenerations(t *testing.T) {
	l := newFrameLoop(0)
	assert.Equal(t, 30, l.fps)
	assert.Nil(t, l.next(), "idle loop schedules nothing")

	require.NotNil(t, l.start())
	first := TickMsg{Gen: l.gen}
	assert.True(t, l.accept(first))

	l.stop()
	l.stop()
	assert.False(t, l.accept(first))
	assert.Nil(t, l.next())

	l.start()
	assert.False(t, l.accept(first), "ticks from an older generation are dropped")
	assert.True(t, l.accept(TickMsg{Gen: l.gen}))
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(100, 0)

	h.Press(core.CommandForward, t0)
	h.Press(core.CommandLeft, t0)

	cmds := h.Commands(t0.Add(100 * time.Millisecond))
	assert.True(t, cmds.Forward)
	assert.True(t, cmds.Left)
	assert.False(t, cmds.Backward)

	assert.False(t, h.Commands(t0.Add(DefaultHoldWindow)).Any())
	assert.False(t, h.Commands(t0.Add(-time.Second)).Any())
}

func TestHeldKeysOpposites(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(100, 0)

	h.Press(core.CommandForward, t0)
	h.Press(core.CommandBackward, t0.Add(10*time.Millisecond))
	cmds := h.Commands(t0.Add(20 * time.Millisecond))
	assert.False(t, cmds.Forward)
	assert.True(t, cmds.Backward)

	h.Press(core.CommandRight, t0)
	h.Clear()
	assert.False(t, h.Commands(t0).Any())
}

func TestCommandFor(t *testing.T) {
	keys := DefaultSailKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
		ok   bool
	}{
		{"w", runeKey('w'), core.CommandForward, true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.CommandForward, true},
		{"s", runeKey('s'), core.CommandBackward, true},
		{"a", runeKey('a'), core.CommandLeft, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.CommandRight, true},
		{"x", runeKey('x'), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.CommandFor(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShareSeed(t *testing.T) {
	assert.ErrorIs(t, ShareSeed(nil, "abc123", "xterm"), ErrShareUnavailable)

	var buf bytes.Buffer
	require.NoError(t, ShareSeed(&buf, "abc123", "xterm-256color"))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b]52;"))
	assert.Contains(t, buf.String(), "YWJjMTIz")
}

func TestScreenshotSave(t *testing.T) {
	fs := memfs.New()
	shots := NewScreenshotter(fs)
	shots.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	scr := core.NewScreen(4, 2)
	scr.DrawText(0, 0, "sea", core.ColorWater)

	path, err := shots.Save("abc 123", scr, "hud line")
	require.NoError(t, err)
	assert.Equal(t, "abc_123_20240102_030405_000.txt", filepath.Base(path))

	f, err := fs.Open("abc_123_20240102_030405_000.txt")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "sea \n    \nhud line\n", string(data))
}

func TestScreenshotSameInstantKeepsBoth(t *testing.T) {
	fs := memfs.New()
	shots := NewScreenshotter(fs)
	shots.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 250*int(time.Millisecond), time.UTC) }

	scr := core.NewScreen(3, 1)
	scr.DrawText(0, 0, "one", core.ColorWater)
	first, err := shots.Save("reef", scr, "hud")
	require.NoError(t, err)

	scr.DrawText(0, 0, "two", core.ColorWater)
	second, err := shots.Save("reef", scr, "hud")
	require.NoError(t, err)
	third, err := shots.Save("reef", scr, "hud")
	require.NoError(t, err)

	assert.Equal(t, "reef_20240102_030405_250.txt", filepath.Base(first))
	assert.Equal(t, "reef_20240102_030405_250_2.txt", filepath.Base(second))
	assert.Equal(t, "reef_20240102_030405_250_3.txt", filepath.Base(third))

	entries, err := fs.ReadDir("/")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	f, err := fs.Open("reef_20240102_030405_250.txt")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "one\nhud\n", string(data))
}

func TestFileSafe(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc123", "abc123"},
		{"a b/c", "a_b_c"},
		{"", "seed"},
		{strings.Repeat("x", 40), strings.Repeat("x", 32)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fileSafe(tt.in))
	}
}

func TestSailModelLoadsSeed(t *testing.T) {
	m, _ := newTestModel(t, SailOptions{})

	assert.Equal(t, "abc123", m.Seed())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "seed abc123")
}

func TestSailModelRecordsSeed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "seeds.db"))
	require.NoError(t, err)
	defer store.Close()

	m, _ := newTestModel(t, SailOptions{Store: store})
	m, _ = update(t, m, runeKey('n'))

	seeds, err := store.RecentSeeds(10)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, m.Seed(), seeds[0].Seed)
	assert.Equal(t, "abc123", seeds[1].Seed)
}

func TestSailModelTicks(t *testing.T) {
	m, clock := newTestModel(t, SailOptions{})

	m, _ = update(t, m, runeKey('w'))
	for i := 0; i < 10; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{Gen: m.loop.gen, Time: clock.t})
		assert.NotNil(t, cmd)
		clock.t = clock.t.Add(33 * time.Millisecond)
	}
	assert.Greater(t, m.sim.Boat().SailTarget, 0.0)

	before := m.sim.Boat()
	m, cmd := update(t, m, TickMsg{Gen: m.loop.gen - 1, Time: clock.t})
	assert.Nil(t, cmd, "stale ticks are dropped")
	assert.Equal(t, before, m.sim.Boat())
}

func TestSailModelEditSeed(t *testing.T) {
	m, _ := newTestModel(t, SailOptions{})

	m, cmd := update(t, m, runeKey('e'))
	assert.True(t, m.editing)
	assert.NotNil(t, cmd)
	assert.Equal(t, "abc123", m.input.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Equal(t, "abc123", m.Seed())

	m, _ = update(t, m, runeKey('e'))
	m.input.SetValue("  lagoon ")
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editing)
	assert.NotNil(t, cmd)
	assert.Equal(t, "lagoon", m.Seed())
}

func TestSailModelEditorSwallowsMovement(t *testing.T) {
	m, clock := newTestModel(t, SailOptions{})

	m, _ = update(t, m, runeKey('e'))
	m, _ = update(t, m, runeKey('w'))

	assert.False(t, m.held.Commands(clock.t).Any())
	assert.Equal(t, "abc123w", m.input.Value())
}

func TestSailModelShare(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newTestModel(t, SailOptions{Share: &buf})

	m, _ = update(t, m, runeKey('c'))
	assert.Contains(t, buf.String(), "YWJjMTIz")
	assert.Equal(t, "Seed copied to clipboard", m.status)

	m, _ = newTestModel(t, SailOptions{})
	m, _ = update(t, m, runeKey('c'))
	assert.Contains(t, m.status, "Clipboard unavailable")
}

func TestSailModelScreenshot(t *testing.T) {
	fs := memfs.New()
	m, _ := newTestModel(t, SailOptions{Screenshots: NewScreenshotter(fs)})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, strings.HasPrefix(m.status, "Saved "), m.status)

	entries, err := fs.ReadDir("/")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSailModelQuit(t *testing.T) {
	m, _ := newTestModel(t, SailOptions{})

	m, cmd := update(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.loop.running)
	assert.Empty(t, m.View())
}

func TestSailModelResize(t *testing.T) {
	m, _ := newTestModel(t, SailOptions{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 38, m.screen.Height())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})
	assert.Equal(t, 1, m.screen.Height())
}

func TestSeedPicker(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "seeds.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.RecordSeed("reef", 12))
	require.NoError(t, store.RecordSeed("lagoon", 16))

	m := NewSeedPickerModel(store, 80, 24)
	require.Len(t, m.seeds, 2)
	assert.Contains(t, m.View(), "lagoon")

	next, _ := m.Update(runeKey('x'))
	m = next.(SeedPickerModel)
	require.Len(t, m.seeds, 1)
	assert.Equal(t, "reef", m.seeds[0].Seed)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SeedPickerModel)
	assert.NotNil(t, cmd)
	seed, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "reef", seed)
}

func TestSeedPickerEmpty(t *testing.T) {
	m := NewSeedPickerModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No seeds recorded yet")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SeedPickerModel)
	assert.Nil(t, cmd)
	_, ok := m.Chosen()
	assert.False(t, ok)

	next, cmd = m.Update(runeKey('q'))
	m = next.(SeedPickerModel)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}
