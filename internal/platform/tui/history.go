package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickshot/internal/storage"
)

const maxHistoryShots = 100

// ShotSource lists recorded shots. *storage.Store implements it.
type ShotSource interface {
	RecentShots(levelID string, limit int) ([]storage.ShotEntry, error)
}

// HistoryKeyMap defines the key bindings for the shot history screen.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextLevel, k.PrevLevel, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded shots.
// The first tab shows every level.
type HistoryModel struct {
	levelIDs []string // "" first, for all levels
	cursor   int
	source   ShotSource
	shots    []storage.ShotEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over the given level IDs.
func NewHistoryModel(source ShotSource, levelIDs []string, width, height int) HistoryModel {
	m := HistoryModel{
		levelIDs: append([]string{""}, levelIDs...),
		source:   source,
		help:     help.New(),
		keys:     DefaultHistoryKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.loadShots()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 10},
		{Title: "Launch", Width: 13},
		{Title: "Aim", Width: 13},
		{Title: "Wall", Width: 6},
		{Title: "Exit", Width: 13},
		{Title: "Outcome", Width: 15},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-7, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) loadShots() {
	m.shots, m.loadErr = nil, nil
	if m.source != nil {
		m.shots, m.loadErr = m.source.RecentShots(m.levelIDs[m.cursor], maxHistoryShots)
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.shots))
	for i, s := range m.shots {
		wall, exit := "-", "-"
		if s.Wall != "" {
			wall = s.Wall
			exit = fmt.Sprintf("%.0f,%.0f", s.ExitX, s.ExitY)
		}
		rows[i] = table.Row{
			s.LevelID,
			fmt.Sprintf("%.0f,%.0f", s.LaunchX, s.LaunchY),
			fmt.Sprintf("%.0f,%.0f", s.AimX, s.AimY),
			wall,
			exit,
			s.Outcome,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.cursor = (m.cursor + 1) % len(m.levelIDs)
			m.loadShots()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.cursor = (m.cursor - 1 + len(m.levelIDs)) % len(m.levelIDs)
			m.loadShots()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SHOT HISTORY - " + m.LevelLabel()))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.loadErr != nil:
		b.WriteString(tableStyle.Render("Cannot load shots: " + m.loadErr.Error()))
	case len(m.shots) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No shots recorded yet.")))
	default:
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// LevelLabel names the selected tab.
func (m HistoryModel) LevelLabel() string {
	if id := m.levelIDs[m.cursor]; id != "" {
		return id
	}
	return "all levels"
}

// Shots returns the shots shown for the selected tab.
func (m HistoryModel) Shots() []storage.ShotEntry {
	return m.shots
}

// RunHistory runs the shot history screen.
func RunHistory(source ShotSource, levelIDs []string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, levelIDs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
