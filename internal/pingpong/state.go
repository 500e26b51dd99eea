// Package pingpong implements a 3D-perspective table tennis match against a
// rule-based bot: ball physics, bot tracking, paddle hits, serve and scoring
// rules, and the category/level reward progression.
//
// All mutable state lives in a GameState owned by one caller. Nothing in this
// package performs I/O; rendering and input are adapters over GameState.
package pingpong

import (
	"math/rand"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Rand is the random source used for serve angles and bot jitter.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Side identifies one of the two players at the table.
type Side int

const (
	SideBot Side = iota
	SidePlayer
)

// String returns the side name.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "bot"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideBot
	}
	return SidePlayer
}

// ParseSide converts "player" or "bot" to a Side; anything else is the bot.
func ParseSide(name string) Side {
	if name == "player" {
		return SidePlayer
	}
	return SideBot
}

// Ball is the ball in table coordinates. U runs across the table, V runs
// from the bot's end (negative) to the player's end, Z is height.
type Ball struct {
	U, V, Z    float64
	VU, VV, VZ float64
	Radius     float64
}

// Pos returns the ball's position on the table plane.
func (b Ball) Pos() core.Vec2 {
	return core.Vec2{U: b.U, V: b.V}
}

// Paddle is a paddle in table coordinates.
type Paddle struct {
	U, V, Z float64
	Radius  float64
}

// Pos returns the paddle's position on the table plane.
func (p Paddle) Pos() core.Vec2 {
	return core.Vec2{U: p.U, V: p.V}
}

// Match holds the scores and serve registers of the match in progress.
type Match struct {
	PlayerScore int
	BotScore    int
	ServeTurn   Side
	BallHeld    bool    // ball rests on the server's paddle
	ServeTimer  float64 // ms left before a held bot serve launches
	ElapsedMS   float64 // simulated time since the match started
	Over        bool
	Winner      Side
}

// Progression is the player's session progress. XP, PlayerLevel and Coins
// never decrease.
type Progression struct {
	Category      int
	Level         int
	XP            int
	PlayerLevel   int
	Coins         int
	MatchesPlayed int
	MatchesWon    int
	TotalPlayTime int // seconds
}

// GameState is the whole world of one game session.
type GameState struct {
	Ball   Ball
	Player Paddle
	Bot    Paddle
	Target core.Vec2 // where input wants the player paddle

	Match    Match
	Progress Progression

	BotSpeed    float64
	SpeedFactor float64

	Phase      Phase
	LastResult *MatchResult // set when a match ends, cleared on the next start

	cfg config.PingPongConfig
	rng Rand
}

// NewGameState creates the session state for a starting category and level.
// Values below 1 are coerced to 1. A nil rng uses a source seeded with seed.
func NewGameState(cfg config.PingPongConfig, category, level int, rng Rand, seed int64) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	if category < 1 {
		category = 1
	}
	if level < 1 {
		level = 1
	}

	s := &GameState{
		Ball: Ball{
			U:      0.5,
			V:      0.5,
			Z:      cfg.Ball.StartZ,
			Radius: cfg.Ball.Radius,
		},
		Player: Paddle{
			U:      cfg.Paddles.PlayerStart.U,
			V:      cfg.Paddles.PlayerStart.V,
			Z:      cfg.Paddles.Z,
			Radius: cfg.Paddles.Radius,
		},
		Bot: Paddle{
			U:      cfg.Paddles.BotStart.U,
			V:      cfg.Paddles.BotStart.V,
			Z:      cfg.Paddles.Z,
			Radius: cfg.Paddles.Radius,
		},
		Progress: Progression{
			Category:    category,
			Level:       level,
			PlayerLevel: 1,
		},
		Phase: PhaseMenu,
		cfg:   cfg,
		rng:   rng,
	}
	s.Target = s.Player.Pos()
	s.Match.ServeTurn = ParseSide(cfg.Match.FirstServe)
	s.applyDifficulty()
	return s
}

// Config returns the configuration the state was built with.
func (s *GameState) Config() config.PingPongConfig {
	return s.cfg
}

// CategoryName returns the display name of the current category.
func (s *GameState) CategoryName() string {
	return s.cfg.Progression.CategoryName(s.Progress.Category)
}

func (s *GameState) applyDifficulty() {
	d := s.cfg.Difficulty.Resolve(s.Progress.Category, s.Progress.Level)
	s.BotSpeed = d.BotSpeed
	s.SpeedFactor = d.SpeedFactor
}
