package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/render"
	"github.com/vovakirdan/tui-archipelago/internal/storage"
)

// maxPickerSeeds is how many logged seeds the picker loads.
const maxPickerSeeds = 100

// SeedPickerKeyMap defines the key bindings for the seed picker.
type SeedPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Forget key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SeedPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Forget, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SeedPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Forget, k.Quit}}
}

// DefaultSeedPickerKeyMap returns default key bindings.
func DefaultSeedPickerKeyMap() SeedPickerKeyMap {
	return SeedPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sail"),
		),
		Forget: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "forget"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SeedPickerModel lists the seed log and lets the user pick one to sail.
type SeedPickerModel struct {
	store    *storage.Store
	seeds    []storage.SeedEntry
	table    table.Model
	help     help.Model
	keys     SeedPickerKeyMap
	width    int
	height   int
	chosen   string
	quitting bool
	err      error
}

// NewSeedPickerModel creates a picker over the store's seed log.
func NewSeedPickerModel(store *storage.Store, width, height int) SeedPickerModel {
	m := SeedPickerModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultSeedPickerKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadSeeds()
	return m
}

func (m *SeedPickerModel) createTable() table.Model {
	seedWidth := max(12, min(32, m.width-40))
	columns := []table.Column{
		{Title: "Seed", Width: seedWidth},
		{Title: "Islands", Width: 7},
		{Title: "Visits", Width: 6},
		{Title: "Last sailed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(render.Hex(core.ColorMuted))).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(render.Hex(core.ColorSail))).
		Background(lipgloss.Color(render.Hex(core.ColorDeepWater))).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *SeedPickerModel) loadSeeds() {
	m.seeds = nil
	if m.store != nil {
		seeds, err := m.store.RecentSeeds(maxPickerSeeds)
		m.seeds, m.err = seeds, err
	}

	rows := make([]table.Row, len(m.seeds))
	for i, s := range m.seeds {
		rows[i] = table.Row{
			s.Seed,
			fmt.Sprintf("%d", s.Islands),
			fmt.Sprintf("%d", s.Visits),
			s.LastUsed.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Init initializes the picker.
func (m SeedPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m SeedPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.seeds) {
				m.chosen = m.seeds[i].Seed
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Forget):
			if i := m.table.Cursor(); m.store != nil && i >= 0 && i < len(m.seeds) {
				if _, err := m.store.ForgetSeed(m.seeds[i].Seed); err != nil {
					m.err = err
				}
				m.loadSeeds()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadSeeds()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m SeedPickerModel) View() string {
	if m.quitting || m.chosen != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(hudStyle.Render("RECENT SEEDS"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(statusStyle.Render("Seed log error: " + m.err.Error()))
	case len(m.seeds) == 0:
		b.WriteString(helpStyle.Render("No seeds recorded yet.\nSail a world to start the log!"))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Chosen returns the picked seed, if any.
func (m SeedPickerModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// RunSeedPicker shows the seed log and returns the seed the user picked.
// ok is false when the user quit without choosing.
func RunSeedPicker(store *storage.Store, width, height int) (seed string, ok bool, err error) {
	p := tea.NewProgram(NewSeedPickerModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isPicker := finalModel.(SeedPickerModel)
	if !isPicker {
		return "", false, nil
	}
	seed, ok = m.Chosen()
	return seed, ok, nil
}
