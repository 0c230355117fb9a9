package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nlipatov/skygate/internal/core"
	"github.com/nlipatov/skygate/internal/storage"
)

// maxScoreRows caps how many entries the scoreboard loads.
const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11")).
	Padding(0, 1)

// Scoreboard is a Bubble Tea model browsing recorded scores.
type Scoreboard struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
}

// NewScoreboard loads recorded scores and builds the scoreboard model.
func NewScoreboard(store *storage.Store) (Scoreboard, error) {
	entries, err := store.TopScores(storage.GameID, maxScoreRows)
	if err != nil {
		return Scoreboard{}, fmt.Errorf("loading scores: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Min(len(rows)+1, 15)),
	)

	return Scoreboard{
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m Scoreboard) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m Scoreboard) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("Skygate High Scores")
	if len(m.table.Rows()) == 0 {
		return title + "\n\n  No scores recorded yet.\n\n" + m.help.View(m.keys)
	}
	return title + "\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunScoreboard shows the interactive scoreboard.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboard(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
