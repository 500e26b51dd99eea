package pingpong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrantRewards(t *testing.T) {
	tests := []struct {
		name     string
		category int
		win      bool
		want     RewardGrant
	}{
		{"category 1 win", 1, true, RewardGrant{EarnedXP: 100, EarnedCoins: 50, LeveledUp: true}},
		{"category 1 loss", 1, false, RewardGrant{EarnedXP: 50, EarnedCoins: 25}},
		{"category 2 win", 2, true, RewardGrant{EarnedXP: 120, EarnedCoins: 60, LeveledUp: true}},
		{"category 2 loss", 2, false, RewardGrant{EarnedXP: 60, EarnedCoins: 30}},
		{"unknown category falls back to 1", 5, true, RewardGrant{EarnedXP: 100, EarnedCoins: 50, LeveledUp: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(tt.category, 1)
			got := s.GrantRewards(tt.win)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.EarnedXP, s.Progress.XP)
			assert.Equal(t, tt.want.EarnedCoins, s.Progress.Coins)
		})
	}
}

func TestAddXP(t *testing.T) {
	s := newState(1, 1)

	assert.False(t, s.AddXP(-50, true))
	assert.Equal(t, 0, s.Progress.XP)

	// A loss never levels up, even past a threshold.
	assert.False(t, s.AddXP(150, false))
	assert.Equal(t, 1, s.Progress.PlayerLevel)

	// One level per call.
	assert.True(t, s.AddXP(150, true))
	assert.Equal(t, 2, s.Progress.PlayerLevel)
	assert.True(t, s.AddXP(0, true))
	assert.Equal(t, 3, s.Progress.PlayerLevel)

	s.AddXP(10_000, true)
	s.AddXP(0, true)
	s.AddXP(0, true)
	assert.Equal(t, 4, s.Progress.PlayerLevel, "capped at the last threshold index")
}

func TestXPMonotonic(t *testing.T) {
	s := newState(1, 1)
	amounts := []int{10, -5, 0, 300, -1000, 40, 1, 2000}

	prevXP, prevLevel := s.Progress.XP, s.Progress.PlayerLevel
	for i, a := range amounts {
		s.AddXP(a, i%2 == 0)
		assert.GreaterOrEqual(t, s.Progress.XP, prevXP)
		assert.GreaterOrEqual(t, s.Progress.PlayerLevel, prevLevel)
		prevXP, prevLevel = s.Progress.XP, s.Progress.PlayerLevel
	}
}

func TestAddCoins(t *testing.T) {
	s := newState(1, 1)
	s.AddCoins(30)
	s.AddCoins(-10)
	assert.Equal(t, 30, s.Progress.Coins)
}

func TestXPForNext(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 100},
		{99, 100},
		{100, 250},
		{999, 1000},
		{5000, 1000},
	}

	for _, tt := range tests {
		s := newState(1, 1)
		s.Progress.XP = tt.xp
		assert.Equal(t, tt.want, s.XPForNext(), "xp %d", tt.xp)
	}
}

func TestRecordMatchCompletion(t *testing.T) {
	s := newState(1, 1)
	s.RecordMatchCompletion(true, 65_400)
	s.RecordMatchCompletion(false, 30_000)

	assert.Equal(t, 2, s.Progress.MatchesPlayed)
	assert.Equal(t, 1, s.Progress.MatchesWon)
	assert.Equal(t, 95, s.Progress.TotalPlayTime)
}

func TestClaimLevel(t *testing.T) {
	t.Run("win advances", func(t *testing.T) {
		s := newState(1, 3)
		assert.True(t, s.ClaimLevel(true))
		assert.Equal(t, 1, s.Progress.Category)
		assert.Equal(t, 4, s.Progress.Level)
	})

	t.Run("win on the last level rolls the category", func(t *testing.T) {
		s := newState(3, 15)
		assert.True(t, s.ClaimLevel(true))
		assert.Equal(t, 4, s.Progress.Category)
		assert.Equal(t, 1, s.Progress.Level)
		assert.InDelta(t, 0.00035, s.BotSpeed, 1e-12)
	})

	t.Run("loss repeats", func(t *testing.T) {
		s := newState(2, 7)
		assert.False(t, s.ClaimLevel(false))
		assert.Equal(t, 2, s.Progress.Category)
		assert.Equal(t, 7, s.Progress.Level)
	})
}

func TestCarryOver(t *testing.T) {
	prev := newState(4, 9)
	prev.AddXP(300, true)
	prev.AddCoins(75)
	prev.RecordMatchCompletion(true, 61000)

	s := newState(2, 3)
	s.CarryOver(prev.Progress)

	assert.Equal(t, 2, s.Progress.Category)
	assert.Equal(t, 3, s.Progress.Level)
	assert.Equal(t, 300, s.Progress.XP)
	assert.Equal(t, 2, s.Progress.PlayerLevel)
	assert.Equal(t, 75, s.Progress.Coins)
	assert.Equal(t, 1, s.Progress.MatchesWon)
	assert.Equal(t, 61, s.Progress.TotalPlayTime)

	s.CarryOver(Progression{})
	assert.Equal(t, 1, s.Progress.PlayerLevel)
}
