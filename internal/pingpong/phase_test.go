package pingpong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseFlowWin(t *testing.T) {
	s := newState(1, 1)
	require.Equal(t, PhaseMenu, s.Phase)

	require.NoError(t, s.Dispatch(EventStart))
	assert.Equal(t, PhaseLevelIntro, s.Phase)

	require.NoError(t, s.Dispatch(EventBegin))
	assert.Equal(t, PhasePlaying, s.Phase)

	require.NoError(t, s.Dispatch(EventPause))
	assert.Equal(t, PhasePaused, s.Phase)
	require.NoError(t, s.Dispatch(EventResume))

	s.Match.PlayerScore = 6
	s.Ball.V = s.Bot.V - 0.2
	s.Ball.VV = -0.001
	require.NotNil(t, s.Tick(0))
	assert.Equal(t, PhaseRoundEnd, s.Phase)

	require.NoError(t, s.Dispatch(EventContinue))
	assert.Equal(t, PhaseRewardClaim, s.Phase)

	require.NoError(t, s.Dispatch(EventClaim))
	assert.Equal(t, PhaseLevelIntro, s.Phase)
	assert.Equal(t, 2, s.Progress.Level)
}

func TestPhaseFlowLoss(t *testing.T) {
	s := playing(newState(1, 4))
	s.Match.BotScore = 6
	s.Match.PlayerScore = 3
	s.Ball.V = s.Player.V + 0.2
	s.Ball.VV = 0.001

	res := s.Tick(0)
	require.NotNil(t, res)
	assert.False(t, res.Won)

	require.NoError(t, s.Dispatch(EventContinue))
	require.NoError(t, s.Dispatch(EventClaim))

	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 4, s.Progress.Level)
	assert.Equal(t, 0, s.Match.PlayerScore)
	assert.Equal(t, 0, s.Match.BotScore)
	assert.False(t, s.Match.Over)
	assert.Nil(t, s.LastResult)
}

func TestDispatchInvalid(t *testing.T) {
	tests := []struct {
		phase Phase
		event Event
	}{
		{PhaseMenu, EventBegin},
		{PhaseMenu, EventQuit},
		{PhaseLevelIntro, EventPause},
		{PhasePlaying, EventStart},
		{PhasePlaying, EventClaim},
		{PhasePlaying, EventMatchOver},
		{PhasePaused, EventPause},
		{PhaseRoundEnd, EventClaim},
		{PhaseRewardClaim, EventContinue},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String()+"/"+tt.event.String(), func(t *testing.T) {
			s := newState(1, 1)
			s.Phase = tt.phase

			err := s.Dispatch(tt.event)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.phase, s.Phase)
		})
	}
}

func TestMatchOverNeedsFinishedMatch(t *testing.T) {
	s := playing(newState(1, 1))

	err := s.Dispatch(EventMatchOver)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Nil(t, s.LastResult)

	// Over without a recorded result is still refused.
	s.Match.Over = true
	assert.False(t, s.CanDispatch(EventMatchOver))

	s.Match.Over = false
	s.Match.PlayerScore = 6
	s.Ball.V = s.Bot.V - 0.2
	s.Ball.VV = -0.001
	require.NotNil(t, s.Tick(0))
	assert.Equal(t, PhaseRoundEnd, s.Phase)
	assert.Equal(t, 1, s.Progress.MatchesPlayed)
}

func TestQuitReturnsToMenu(t *testing.T) {
	for _, p := range []Phase{PhaseLevelIntro, PhasePlaying, PhasePaused, PhaseRoundEnd, PhaseRewardClaim} {
		s := newState(1, 1)
		s.Phase = p
		require.NoError(t, s.Dispatch(EventQuit), p.String())
		assert.Equal(t, PhaseMenu, s.Phase)
	}
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	s := playing(newState(1, 1))
	require.NoError(t, s.Dispatch(EventPause))
	before := s.Ball

	assert.Nil(t, s.Tick(16))
	assert.Equal(t, before, s.Ball)
}
