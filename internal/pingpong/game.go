package pingpong

import (
	"github.com/vovakirdan/pingpong/internal/assets"
	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// StepResult reports what happened during one Step.
type StepResult struct {
	Phase    Phase
	Changed  bool         // phase differs from the one before the step
	Finished *MatchResult // non-nil on the frame a match ended
	Exit     bool         // Back was pressed on the menu
}

// Game runs one session: it maps platform actions onto the phase machine
// and the player's paddle, and draws the state into a core.Screen.
type Game struct {
	cfg     config.PingPongConfig
	runtime core.RuntimeConfig
	state   *GameState
	sprites *assets.Sprites
}

// New creates a game using cfg for all tuning.
func New(cfg config.PingPongConfig) *Game {
	return &Game{cfg: cfg, sprites: assets.Placeholder()}
}

// Reset starts a new session at the given category and level, in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig, category, level int) {
	g.runtime = runtime
	g.state = NewGameState(g.cfg, category, level, nil, runtime.Seed)
}

// Resize updates the screen size used to map pointer positions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// SetSprites swaps in loaded sprites. nil restores the placeholder.
func (g *Game) SetSprites(sp *assets.Sprites) {
	if sp == nil {
		sp = assets.Placeholder()
	}
	g.sprites = sp
}

// State returns the live session state.
func (g *Game) State() *GameState {
	return g.state
}

// Step applies one frame of input and advances play by dt milliseconds.
func (g *Game) Step(in core.InputFrame, dt float64) StepResult {
	s := g.state
	before := s.Phase
	var res StepResult

	switch {
	case in.Has(core.ActionBack):
		if s.Phase == PhaseMenu {
			res.Exit = true
		} else {
			g.try(EventQuit)
		}
	case in.Has(core.ActionPause):
		if !g.try(EventPause) {
			g.try(EventResume)
		}
	case in.Has(core.ActionConfirm):
		g.confirm()
	}

	if s.Phase == PhasePlaying {
		g.applyMovement(in)
		res.Finished = s.Tick(dt)
	}

	res.Phase = s.Phase
	res.Changed = s.Phase != before
	return res
}

// confirm advances whichever screen is showing.
func (g *Game) confirm() {
	switch g.state.Phase {
	case PhaseMenu:
		g.try(EventStart)
	case PhaseLevelIntro:
		g.try(EventBegin)
	case PhasePaused:
		g.try(EventResume)
	case PhaseRoundEnd:
		g.try(EventContinue)
	case PhaseRewardClaim:
		g.try(EventClaim)
	case PhasePlaying:
		g.state.ReleaseServe()
	}
}

func (g *Game) try(ev Event) bool {
	return g.state.Dispatch(ev) == nil
}

func (g *Game) applyMovement(in core.InputFrame) {
	s := g.state

	if in.Pointer.Valid {
		u, v := ScreenToWorld(float64(in.Pointer.X), float64(in.Pointer.Y), g.runtime.ScreenW, g.runtime.ScreenH)
		s.SetTarget(u, v)
	}

	var du, dv float64
	if in.Has(core.ActionLeft) {
		du--
	}
	if in.Has(core.ActionRight) {
		du++
	}
	if in.Has(core.ActionUp) {
		dv--
	}
	if in.Has(core.ActionDown) {
		dv++
	}
	if du != 0 || dv != 0 {
		s.NudgeTarget(du, dv)
	}

	if in.Has(core.ActionServe) {
		s.ReleaseServe()
	}
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.state, g.sprites)
}
