package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nlipatov/skygate/internal/config"
	"github.com/nlipatov/skygate/internal/core"
	"github.com/nlipatov/skygate/internal/game"
	"github.com/nlipatov/skygate/internal/storage"
)

// Options configures a game run.
type Options struct {
	Cols, Rows int
	FPS        int   // Frame driver rate (default 60)
	Seed       int64 // RNG seed, 0 = time-based
}

// Model is the Bubble Tea model driving a game session. It owns the
// frame loop: ticks arrive at the configured rate, but the session is
// only updated while it asks for frames and the driver is not paused.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	geo      *termGeometry
	keys     *KeyMapper
	cfg      config.Config
	fps      int
	start    time.Time // Monotonic reference for update timestamps
	paused   bool
	quitting bool
}

// NewModel creates a model for one game session. store may be nil; the
// game then runs without persistence.
func NewModel(cfg config.Config, store *storage.Store, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	geo := newTermGeometry(opts.Cols, opts.Rows, cfg)
	return Model{
		session: game.NewSession(geo, storage.NewKeeper(store), cfg, opts.Seed),
		screen:  core.NewScreen(opts.Cols, opts.Rows),
		geo:     geo,
		keys:    NewKeyMapper(),
		cfg:     cfg,
		fps:     opts.FPS,
		start:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// now returns monotonic seconds since the model was created.
// time.Since uses the runtime's monotonic clock, so wall clock jumps
// cannot move timestamps backwards.
func (m Model) now() float64 {
	return time.Since(m.start).Seconds()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.geo.Resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies a mapped input action.
func (m Model) handleAction(a Action) (tea.Model, tea.Cmd) {
	switch a {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionActivate:
		if m.paused {
			return m, nil
		}
		m.session.Activate(m.now())
	case ActionPause:
		m.paused = !m.paused
	case ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// handleTick runs one frame. The session only advances while it wants
// frames; coming back from pause produces a large elapsed time that the
// core clamps to its maximum step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && m.session.WantsFrame() {
		m.session.Update(m.now())
	}
	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.session.Snapshot(), m.cfg.Field)

	dir := filepath.Join(os.Getenv("HOME"), ".skygate", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", storage.GameID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot(), m.cfg.Field)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED - press P to resume ")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one local game session.
func Run(cfg config.Config, store *storage.Store, opts Options) error {
	model := NewModel(cfg, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer press doubles as the activate signal
	)

	_, err := p.Run()
	return err
}
