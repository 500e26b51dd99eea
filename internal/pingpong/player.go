package pingpong

import (
	"github.com/vovakirdan/pingpong/internal/core"
)

// SetTarget moves the player's paddle target, clamped to the player's band.
func (s *GameState) SetTarget(u, v float64) {
	pc := s.cfg.Paddles
	s.Target.U = core.ClampF(u, pc.PlayerMin.U, pc.PlayerMax.U)
	s.Target.V = core.ClampF(v, pc.PlayerMin.V, pc.PlayerMax.V)
}

// NudgeTarget shifts the target by whole key steps.
func (s *GameState) NudgeTarget(du, dv float64) {
	step := s.cfg.Paddles.KeyStep
	s.SetTarget(s.Target.U+du*step, s.Target.V+dv*step)
}

// smoothPlayer eases the player paddle toward its target once per frame.
func (s *GameState) smoothPlayer() {
	k := s.cfg.Paddles.Smoothing
	s.Player.U = core.Lerp(s.Player.U, s.Target.U, k)
	s.Player.V = core.Lerp(s.Player.V, s.Target.V, k)
}
