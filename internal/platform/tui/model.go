package tui

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/render"
	"github.com/vovakirdan/tui-archipelago/internal/sim"
	"github.com/vovakirdan/tui-archipelago/internal/storage"
)

// statusTTL is how long a transient status message stays on screen.
const statusTTL = 3 * time.Second

// chromeRows are the terminal rows used by the HUD and the bottom line.
const chromeRows = 2

// SailOptions configures a sailing session.
type SailOptions struct {
	Config      core.RuntimeConfig
	Sim         sim.Params
	Render      render.Options
	HoldWindow  time.Duration
	Store       *storage.Store // Optional seed log
	Logger      *log.Logger    // nil discards
	Share       io.Writer      // Terminal for OSC 52; nil disables sharing
	Term        string
	Screenshots *Screenshotter // nil disables screenshots
}

// SailModel is the Bubble Tea model for one sailing session.
type SailModel struct {
	sim      *sim.Simulation
	renderer *render.Renderer
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	share    io.Writer
	term     string
	shots    *Screenshotter

	keys  SailKeyMap
	help  help.Model
	input textinput.Model

	held  HeldKeys
	clock *sim.FrameClock
	loop  frameLoop
	now   func() time.Time

	editing     bool
	status      string
	statusUntil time.Time
	quitting    bool
}

// NewSailModel creates a session and loads its first world.
func NewSailModel(opts SailOptions) SailModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Sim == (sim.Params{}) {
		opts.Sim = sim.DefaultParams()
	}
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	input := textinput.New()
	input.Prompt = "seed> "
	input.Placeholder = "empty for a random seed"
	input.CharLimit = 64

	h := help.New()
	h.ShowAll = false

	m := SailModel{
		sim:      sim.New(opts.Sim, logger),
		renderer: render.New(opts.Render),
		screen:   core.NewScreen(cfg.ScreenW, viewRows(cfg.ScreenH)),
		store:    opts.Store,
		logger:   logger,
		share:    opts.Share,
		term:     opts.Term,
		shots:    opts.Screenshots,
		keys:     DefaultSailKeyMap(),
		help:     h,
		input:    input,
		held:     NewHeldKeys(opts.HoldWindow),
		clock:    sim.NewFrameClock(opts.Sim.MaxStep),
		loop:     newFrameLoop(cfg.TickRate),
		now:      time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.loop.arm()
	m.load(cfg.Seed)
	return m
}

func viewRows(height int) int {
	return max(1, height-chromeRows)
}

// Seed returns the seed of the loaded world.
func (m SailModel) Seed() string {
	return m.sim.Seed()
}

// Init schedules the first frame.
func (m SailModel) Init() tea.Cmd {
	return m.loop.next()
}

// Update handles messages and updates the model state.
func (m SailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, viewRows(msg.Height))
		m.help.Width = msg.Width
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input while sailing.
func (m SailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.loop.stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.held.Clear()
		m.input.SetValue(m.sim.Seed())
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NewSeed):
		m.load("")
		cmd := m.loop.start()
		return m, cmd
	case key.Matches(msg, m.keys.Share):
		m.shareSeed()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if cmd, ok := m.keys.CommandFor(msg); ok {
		m.held.Press(cmd, m.now())
	}
	return m, nil
}

// handleEditKey processes keyboard input in the seed editor.
func (m SailModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		seed := m.input.Value()
		m.closeEditor()
		m.load(seed)
		cmd := m.loop.start()
		return m, cmd
	case tea.KeyEsc:
		m.closeEditor()
		return m, nil
	case tea.KeyCtrlC:
		m.loop.stop()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SailModel) closeEditor() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// handleTick advances the simulation by the wall time since the last frame.
func (m SailModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.accept(msg) {
		return m, nil
	}

	var cmds core.Commands
	if !m.editing {
		cmds = m.held.Commands(msg.Time)
	}
	m.sim.Step(m.clock.Elapsed(msg.Time), cmds)

	return m, m.loop.next()
}

// load regenerates the world and records the seed.
func (m *SailModel) load(seed string) {
	resolved := m.sim.Load(seed)
	m.clock.Reset()
	m.held.Clear()

	if m.store != nil {
		if err := m.store.RecordSeed(resolved, len(m.sim.World().Islands)); err != nil {
			m.logger.Warn("could not record seed", "seed", resolved, "error", err)
		}
	}
	m.setStatus("Sailing " + resolved)
}

func (m *SailModel) shareSeed() {
	err := ShareSeed(m.share, m.sim.Seed(), m.term)
	switch {
	case errors.Is(err, ErrShareUnavailable):
		m.setStatus("Clipboard unavailable, seed is " + m.sim.Seed())
	case err != nil:
		m.logger.Warn("share failed", "error", err)
		m.setStatus("Copy failed")
	default:
		m.setStatus("Seed copied to clipboard")
	}
}

func (m *SailModel) saveScreenshot() {
	if m.shots == nil {
		m.setStatus("Screenshots disabled")
		return
	}
	m.renderer.Paint(m.screen, m.sim.Snapshot(), m.sim.Params().Boat)
	path, err := m.shots.Save(m.sim.Seed(), m.screen, m.hudLine())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("Screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("Saved " + path)
}

func (m *SailModel) setStatus(text string) {
	m.status = text
	m.statusUntil = m.now().Add(statusTTL)
}

func (m SailModel) hudLine() string {
	return render.FormatHUD(m.sim.Telemetry(), m.sim.Seed())
}

// bottomLine is the editor, a status message, or the help bar.
func (m SailModel) bottomLine() string {
	switch {
	case m.editing:
		return m.input.View()
	case m.status != "" && m.now().Before(m.statusUntil):
		return statusStyle.Render(m.status)
	default:
		return helpStyle.Render(m.help.View(m.keys))
	}
}

// View renders the current state to a string for display.
func (m SailModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Paint(m.screen, m.sim.Snapshot(), m.sim.Params().Boat)

	var b strings.Builder
	b.WriteString(hudStyle.Render(m.hudLine()))
	b.WriteRune('\n')
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(m.bottomLine())
	return b.String()
}

// Run starts an interactive session on the local terminal.
func Run(opts SailOptions) error {
	p := tea.NewProgram(NewSailModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
