package tui

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/pingpong"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// GameModel is the Bubble Tea model for one table-tennis session.
//
// The tick loop is only armed once the sprite preload has answered. Each
// tick feeds the real elapsed time to the game, capped by MaxFrameMS; the
// first tick of play after any other phase advances by zero so a pause or a
// menu never turns into one long frame.
type GameModel struct {
	game       *pingpong.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	session    string
	config     core.RuntimeConfig
	assets     fs.FS
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	ready      bool
	lastTick   time.Time
	lastPhase  pingpong.Phase
	quitting   bool
	backToMenu bool
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Config   config.PingPongConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // optional match ledger
	Logger   *log.Logger    // optional; discards when nil
	Session  string         // ledger key
	Assets   fs.FS          // sprite source; embedded sprites when nil
	Category int
	Level    int
	Carry    *pingpong.Progression // session totals from an earlier game
}

// NewGameModel creates a game model starting at the options' category and level.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game := pingpong.New(opts.Config)
	game.Reset(cfg, opts.Category, opts.Level)
	if opts.Carry != nil {
		game.State().CarryOver(*opts.Carry)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		session:    opts.Session,
		config:     cfg,
		assets:     opts.Assets,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		lastPhase:  game.State().Phase,
	}
}

// Init starts the sprite preload. Ticking begins when it reports back.
func (m GameModel) Init() tea.Cmd {
	return preloadCmd(m.assets)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AssetsMsg:
		return m.handleAssets(msg)

	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
		}
		return m, nil

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m GameModel) handleAssets(msg AssetsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("sprite preload failed, using placeholders", "error", msg.Err)
	}
	m.game.SetSprites(msg.Sprites)
	m.ready = true
	m.lastTick = time.Now()
	return m, tickCmd(m.config.TickRate)
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if m.lastPhase == pingpong.PhasePlaying {
		dt = m.config.FrameDelta(float64(now.Sub(m.lastTick)) / float64(time.Millisecond))
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.lastPhase = result.Phase
	m.inputFrame.Clear()

	if result.Finished != nil {
		m.recordMatch(result.Finished)
	}
	if result.Exit {
		m.backToMenu = true
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) recordMatch(r *pingpong.MatchResult) {
	m.logger.Info("match finished",
		"session", m.session,
		"category", r.Category,
		"level", r.Level,
		"score", fmt.Sprintf("%d-%d", r.PlayerScore, r.BotScore),
		"won", r.Won,
	)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveMatch(storage.MatchRecord{
		Session:     m.session,
		Category:    r.Category,
		Level:       r.Level,
		PlayerScore: r.PlayerScore,
		BotScore:    r.BotScore,
		Won:         r.Won,
		EarnedXP:    r.Grant.EarnedXP,
		EarnedCoins: r.Grant.EarnedCoins,
		Duration:    time.Duration(r.DurationMS * float64(time.Millisecond)),
	})
	if err != nil {
		m.logger.Warn("could not record match", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pingpong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("pingpong_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return centerText("Loading...", m.config.ScreenW)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the live game state.
func (m GameModel) State() *pingpong.GameState {
	return m.game.State()
}

// Ready reports whether the preload finished and the loop is running.
func (m GameModel) Ready() bool {
	return m.ready
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
