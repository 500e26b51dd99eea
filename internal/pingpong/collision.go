package pingpong

import (
	"math"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// HitPaddle returns the ball from a paddle when it came within reach during
// the frame that moved it from "from" to its current position. Only a ball
// travelling toward the paddle can be hit, so a ball leaving a paddle is not
// struck twice. side is the paddle's owner.
//
// On a hit the ball is put back at its closest approach to the paddle, vv
// points away from the paddle with its magnitude raised by
// HitSpeedIncrement (capped at maxSpeed), vu picks up the offset from the
// paddle center, and the ball gets an upward lift.
func HitPaddle(b *Ball, from core.Vec2, p Paddle, side Side, cfg config.PaddleConfig, maxSpeed float64) bool {
	toward := (side == SidePlayer && b.VV > 0) || (side == SideBot && b.VV < 0)
	if !toward {
		return false
	}

	contact := closestOnSegment(from, b.Pos(), p.Pos())
	if contact.Dist(p.Pos()) > b.Radius+p.Radius+cfg.HitReach {
		return false
	}
	if math.Abs(b.Z-p.Z) > cfg.HitZReach {
		return false
	}

	b.U, b.V = contact.U, contact.V

	speed := math.Abs(b.VV) + cfg.HitSpeedIncrement
	if maxSpeed > 0 && speed > maxSpeed {
		speed = maxSpeed
	}
	if side == SidePlayer {
		b.VV = -speed
	} else {
		b.VV = speed
	}

	b.VU += (contact.U - p.U) * cfg.HitAngleFactor
	if maxSpeed > 0 {
		b.VU = core.ClampF(b.VU, -maxSpeed, maxSpeed)
	}
	if b.VZ < cfg.HitLift {
		b.VZ = cfg.HitLift
	}
	return true
}

// closestOnSegment returns the point of segment a-b nearest to p.
func closestOnSegment(a, b, p core.Vec2) core.Vec2 {
	du, dv := b.U-a.U, b.V-a.V
	lenSq := du*du + dv*dv
	if lenSq == 0 {
		return b
	}
	t := core.ClampF(((p.U-a.U)*du+(p.V-a.V)*dv)/lenSq, 0, 1)
	return core.Vec2{U: a.U + t*du, V: a.V + t*dv}
}

// resolveHits checks both paddles against the path the ball took this frame.
func (s *GameState) resolveHits(from core.Vec2) {
	if s.Match.BallHeld {
		return
	}
	limit := s.cfg.Ball.MaxSpeed
	if !HitPaddle(&s.Ball, from, s.Player, SidePlayer, s.cfg.Paddles, limit) {
		HitPaddle(&s.Ball, from, s.Bot, SideBot, s.cfg.Paddles, limit)
	}
}

// pointWinner reports which side won the rally, if the ball got past a paddle.
func (s *GameState) pointWinner() (Side, bool) {
	if s.Match.BallHeld {
		return SideBot, false
	}
	margin := s.cfg.Match.ScoreMargin
	switch {
	case s.Ball.V < s.Bot.V-margin:
		return SidePlayer, true
	case s.Ball.V > s.Player.V+margin:
		return SideBot, true
	}
	return SideBot, false
}

// AwardPoint credits a point to winner. When that ends the match the ball
// stays frozen and true is returned; otherwise the next serve is set up.
func (s *GameState) AwardPoint(winner Side) bool {
	if winner == SidePlayer {
		s.Match.PlayerScore++
	} else {
		s.Match.BotScore++
	}

	if s.Match.PlayerScore >= s.cfg.Match.WinScore || s.Match.BotScore >= s.cfg.Match.WinScore {
		s.Match.Over = true
		s.Match.Winner = winner
		s.Match.BallHeld = true
		s.Ball.VU, s.Ball.VV, s.Ball.VZ = 0, 0, 0
		return true
	}

	if s.cfg.Match.ServeRule == config.ServeRuleBot {
		s.Match.ServeTurn = SideBot
	} else {
		s.Match.ServeTurn = s.Match.ServeTurn.Other()
	}
	s.ResetBall()
	return false
}
