package tui

import (
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/pingpong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// SessionOptions configures a full session: level picker, game, stats.
type SessionOptions struct {
	Config   config.PingPongConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store
	Logger   *log.Logger
	Session  string
	Assets   fs.FS
	Category int
	Level    int
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenStats
)

// SessionModel manages the session flow: menu -> game -> menu, with the
// stats screen reachable from the menu.
type SessionModel struct {
	opts     SessionOptions
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	stats    *StatsModel
	progress *pingpong.Progression
	quitting bool
}

// NewSessionModel creates a session that opens on the level picker.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Session == "" {
		opts.Session = "local"
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Config, opts.Runtime, opts.Category, opts.Level),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		stats := NewStatsModel(m.opts.Store, m.opts.Session, m.opts.Config.Progression,
			m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.stats = &stats
		m.screen = screenStats
		m.menu.openStats = false
		return m, stats.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		m.opts.Category, m.opts.Level = sel.Category, sel.Level
		game := NewGameModel(GameOptions{
			Config:   m.opts.Config,
			Runtime:  m.opts.Runtime,
			Store:    m.opts.Store,
			Logger:   m.opts.Logger,
			Session:  m.opts.Session,
			Assets:   m.opts.Assets,
			Category: sel.Category,
			Level:    sel.Level,
			Carry:    m.progress,
		})
		m.game = &game
		m.screen = screenGame
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// Reopen the picker on the stage the player reached.
		p := m.game.State().Progress
		m.progress = &p
		m.menu = NewMenuModel(m.opts.Config, m.opts.Runtime, p.Category, p.Level)
		m.game = nil
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateStats handles updates when on the stats screen.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsModel); ok {
		m.stats = &statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		m.stats = nil
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// Run starts a local session in the current terminal.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
