package pingpong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pingpong/internal/config"
)

func TestBotServeFirstLevel(t *testing.T) {
	s := newState(1, 1, 0.5)
	s.StartLevel()

	assert.InDelta(t, 0.0002, s.BotSpeed, 1e-12)
	assert.InDelta(t, 0.7, s.SpeedFactor, 1e-12)
	assert.False(t, s.Match.BallHeld)
	assert.InDelta(t, 0.00077, s.Ball.VV, 1e-12)
	assert.Equal(t, 0.0, s.Ball.VU)
	assert.InDelta(t, 0.5, s.Ball.U, 1e-12)
	assert.InDelta(t, -0.34, s.Ball.V, 1e-12)
	assert.Equal(t, 0.2, s.Ball.Z)
	assert.Equal(t, 0.0, s.Ball.VZ)
}

func TestServeSpreadScalesWithSpeedFactor(t *testing.T) {
	s := newState(7, 1, 1.0)
	s.StartLevel()

	require.InDelta(t, 2.0, s.SpeedFactor, 1e-12)
	assert.InDelta(t, 0.5*0.0012*2.0, s.Ball.VU, 1e-12)
	assert.InDelta(t, 0.0022, s.Ball.VV, 1e-12)
}

func TestPlayerServeHeld(t *testing.T) {
	s := playing(newState(1, 1, 0.5))
	s.Match.ServeTurn = SidePlayer
	s.ResetBall()

	require.True(t, s.Match.BallHeld)
	assert.InDelta(t, 0.5, s.Ball.U, 1e-12)
	assert.InDelta(t, 0.66, s.Ball.V, 1e-12)

	// The held ball follows the paddle and does not fall.
	s.SetTarget(0.8, 0.72)
	for i := 0; i < 30; i++ {
		s.Tick(16)
	}
	assert.True(t, s.Match.BallHeld)
	assert.InDelta(t, s.Player.U, s.Ball.U, 1e-12)
	assert.Equal(t, 0.2, s.Ball.Z)

	require.True(t, s.ReleaseServe())
	assert.False(t, s.Match.BallHeld)
	assert.InDelta(t, -0.00077, s.Ball.VV, 1e-12)

	assert.False(t, s.ReleaseServe(), "second release is a no-op")
}

func TestReleaseServeOnBotTurn(t *testing.T) {
	s := newState(1, 1)
	s.StartLevel()

	assert.False(t, s.ReleaseServe())
}

func TestDelayedBotServe(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Match.ServeDelayMS = 100
	s := playing(NewGameState(cfg, 1, 1, &seqRand{vals: []float64{0.5}}, 0))

	require.True(t, s.Match.BallHeld)
	s.Tick(60)
	assert.True(t, s.Match.BallHeld)
	s.Tick(60)
	assert.False(t, s.Match.BallHeld)
	assert.InDelta(t, 0.00077, s.Ball.VV, 1e-12)
}

func TestResetBallRestoresPaddles(t *testing.T) {
	s := newState(1, 1)
	s.Player.U, s.Player.V = 0.1, 0.9
	s.Bot.U, s.Bot.V = 0.8, -0.2

	s.ResetBall()

	assert.Equal(t, 0.5, s.Player.U)
	assert.Equal(t, 0.72, s.Player.V)
	assert.Equal(t, 0.5, s.Bot.U)
	assert.Equal(t, -0.40, s.Bot.V)
	assert.Equal(t, s.Player.Pos(), s.Target)
}
