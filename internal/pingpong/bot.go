package pingpong

import (
	"math"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// UpdateBotMovement moves the bot paddle toward where the ball is heading.
//
// Horizontally it chases a linear extrapolation of the ball and holds still
// inside a dead zone. Vertically it backs off when an incoming ball is close,
// steps in toward its resting line when the ball is still far, and drifts in
// slowly while the ball travels away. A small random nudge now and then keeps
// it from tracking perfectly. The result is clamped to the bot's band.
func UpdateBotMovement(bot *Paddle, ball Ball, botSpeed, dt float64, cfg config.BotConfig, rng Rand) {
	step := botSpeed * dt
	predictU := ball.U + ball.VU*cfg.Lookahead

	errU := predictU - bot.U
	if math.Abs(errU) > cfg.DeadZone {
		bot.U += core.Sign(errU) * step
	}

	switch {
	case ball.VV < 0 && ball.V < bot.V+cfg.NearBand:
		if bot.V > cfg.RetreatLimit {
			bot.V -= step * cfg.RetreatRate
		}
	case ball.VV < 0:
		if bot.V < cfg.RestLimit {
			bot.V += step * cfg.ApproachRate
		}
	default:
		if bot.V < cfg.RestLimit {
			bot.V += step * cfg.RecoverRate
		}
	}

	if rng != nil && rng.Float64() < cfg.JitterChance {
		bot.U += (rng.Float64() - 0.5) * cfg.JitterU
		bot.V += (rng.Float64() - 0.5) * cfg.JitterV
	}

	bot.U = core.ClampF(bot.U, cfg.Min.U, cfg.Max.U)
	bot.V = core.ClampF(bot.V, cfg.Min.V, cfg.Max.V)
}
