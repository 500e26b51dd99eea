package pingpong

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pingpong/internal/config"
)

func TestHitPaddle(t *testing.T) {
	pc := config.DefaultConfig().Paddles
	const maxSpeed = 0.004
	player := Paddle{U: 0.5, V: 0.72, Z: 0.1, Radius: 0.04}
	bot := Paddle{U: 0.5, V: -0.4, Z: 0.1, Radius: 0.04}

	t.Run("player returns an incoming ball", func(t *testing.T) {
		b := Ball{U: 0.52, V: 0.70, Z: 0.12, VV: 0.001, Radius: 0.02}
		hit := HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed)

		assert.True(t, hit)
		assert.InDelta(t, -(0.001 + pc.HitSpeedIncrement), b.VV, 1e-12)
		assert.InDelta(t, 0.02*pc.HitAngleFactor, b.VU, 1e-12)
		assert.GreaterOrEqual(t, b.VZ, pc.HitLift)
	})

	t.Run("bot returns an incoming ball", func(t *testing.T) {
		b := Ball{U: 0.5, V: -0.38, Z: 0.1, VV: -0.001, Radius: 0.02}
		assert.True(t, HitPaddle(&b, b.Pos(), bot, SideBot, pc, maxSpeed))
		assert.Greater(t, b.VV, 0.0)
	})

	t.Run("ball moving away is ignored", func(t *testing.T) {
		b := Ball{U: 0.5, V: 0.70, Z: 0.1, VV: -0.001, Radius: 0.02}
		assert.False(t, HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed))
		assert.Equal(t, -0.001, b.VV)
	})

	t.Run("out of reach", func(t *testing.T) {
		b := Ball{U: 0.7, V: 0.72, Z: 0.1, VV: 0.001, Radius: 0.02}
		assert.False(t, HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed))
	})

	t.Run("too high", func(t *testing.T) {
		b := Ball{U: 0.5, V: 0.72, Z: 0.6, VV: 0.001, Radius: 0.02}
		assert.False(t, HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed))
	})

	t.Run("speed is capped", func(t *testing.T) {
		b := Ball{U: 0.5, V: 0.72, Z: 0.1, VV: 0.00399, Radius: 0.02}
		assert.True(t, HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed))
		assert.Equal(t, -maxSpeed, b.VV)
	})
}

func TestHitPaddleAlongPath(t *testing.T) {
	pc := config.DefaultConfig().Paddles
	physics := config.DefaultConfig().Physics
	const maxSpeed = 0.004
	player := Paddle{U: 0.5, V: 0.72, Z: 0.1, Radius: 0.04}

	t.Run("fast ball that jumped the paddle is returned", func(t *testing.T) {
		b := Ball{U: 0.5, V: 0.62, Z: 0.1, VV: maxSpeed, Radius: 0.02}
		assert.False(t, HitPaddle(&b, b.Pos(), player, SidePlayer, pc, maxSpeed))

		from := b.Pos()
		Advance(&b, physics, 50)
		assert.Greater(t, b.V, player.V+b.Radius+player.Radius+pc.HitReach)

		assert.True(t, HitPaddle(&b, from, player, SidePlayer, pc, maxSpeed))
		assert.InDelta(t, player.V, b.V, 1e-9)
		assert.Less(t, b.VV, 0.0)
	})

	t.Run("path that passes wide is missed", func(t *testing.T) {
		b := Ball{U: 0.8, V: 0.62, Z: 0.1, VV: maxSpeed, Radius: 0.02}
		from := b.Pos()
		Advance(&b, physics, 50)

		assert.False(t, HitPaddle(&b, from, player, SidePlayer, pc, maxSpeed))
		assert.Equal(t, maxSpeed, b.VV)
	})
}

func TestTickReturnsFastBall(t *testing.T) {
	s := playing(newState(1, 1))
	s.Ball = Ball{U: s.Player.U, V: 0.62, Z: 0.1, VV: 0.004, Radius: s.Ball.Radius}

	assert.Nil(t, s.Tick(50))
	assert.Equal(t, 0, s.Match.BotScore)
	assert.Equal(t, 0, s.Match.PlayerScore)
	assert.Less(t, s.Ball.VV, 0.0)
	assert.InDelta(t, s.Player.V, s.Ball.V, 1e-9)
}

func TestScoring(t *testing.T) {
	t.Run("ball past the bot scores for the player", func(t *testing.T) {
		s := playing(newState(1, 1))
		s.Ball.V = s.Bot.V - 0.2
		s.Ball.VV = -0.001

		assert.Nil(t, s.Tick(0))
		assert.Equal(t, 1, s.Match.PlayerScore)
		assert.Equal(t, 0, s.Match.BotScore)
		assert.Equal(t, SidePlayer, s.Match.ServeTurn)
		assert.True(t, s.Match.BallHeld)
	})

	t.Run("ball past the player scores for the bot", func(t *testing.T) {
		s := playing(newState(1, 1))
		s.Ball.V = s.Player.V + 0.2
		s.Ball.VV = 0.001

		s.Tick(0)
		assert.Equal(t, 1, s.Match.BotScore)
	})

	t.Run("bot serve rule", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Match.ServeRule = config.ServeRuleBot
		s := playing(NewGameState(cfg, 1, 1, &seqRand{}, 0))
		s.Ball.V = s.Bot.V - 0.2
		s.Ball.VV = -0.001

		s.Tick(0)
		assert.Equal(t, SideBot, s.Match.ServeTurn)
		assert.False(t, s.Match.BallHeld)
	})
}

func TestMatchEnd(t *testing.T) {
	s := playing(newState(1, 1))
	s.Match.PlayerScore = 6
	s.Match.ElapsedMS = 90_000
	s.Ball.V = s.Bot.V - 0.2
	s.Ball.VV = -0.001

	res := s.Tick(0)

	if assert.NotNil(t, res) {
		assert.True(t, res.Won)
		assert.Equal(t, 7, res.PlayerScore)
		assert.Equal(t, RewardGrant{EarnedXP: 100, EarnedCoins: 50, LeveledUp: true}, res.Grant)
	}
	assert.Equal(t, PhaseRoundEnd, s.Phase)
	assert.True(t, s.Match.Over)
	assert.Equal(t, 100, s.Progress.XP)
	assert.Equal(t, 50, s.Progress.Coins)
	assert.Equal(t, 2, s.Progress.PlayerLevel)
	assert.Equal(t, 1, s.Progress.MatchesPlayed)
	assert.Equal(t, 1, s.Progress.MatchesWon)
	assert.Equal(t, 90, s.Progress.TotalPlayTime)

	// Frozen after the match.
	assert.Nil(t, s.Tick(16))
	assert.Equal(t, 7, s.Match.PlayerScore)
}
