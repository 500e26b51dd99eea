package pingpong

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by Dispatch for an event the current
// phase does not accept.
var ErrInvalidTransition = errors.New("pingpong: invalid phase transition")

// Phase is the screen-level state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLevelIntro
	PhasePlaying
	PhasePaused
	PhaseRoundEnd
	PhaseRewardClaim
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLevelIntro:
		return "level-intro"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseRoundEnd:
		return "round-end"
	case PhaseRewardClaim:
		return "reward-claim"
	default:
		return "unknown"
	}
}

// Event drives a phase transition.
type Event int

const (
	EventStart     Event = iota // menu -> level intro
	EventBegin                  // level intro -> playing
	EventPause                  // playing -> paused
	EventResume                 // paused -> playing
	EventMatchOver              // playing -> round end
	EventContinue               // round end -> reward claim
	EventClaim                  // reward claim -> level intro (won) or playing (lost)
	EventQuit                   // any -> menu
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventBegin:
		return "begin"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventMatchOver:
		return "match-over"
	case EventContinue:
		return "continue"
	case EventClaim:
		return "claim"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

var transitions = map[Phase]map[Event]bool{
	PhaseMenu:        {EventStart: true},
	PhaseLevelIntro:  {EventBegin: true, EventQuit: true},
	PhasePlaying:     {EventPause: true, EventMatchOver: true, EventQuit: true},
	PhasePaused:      {EventResume: true, EventQuit: true},
	PhaseRoundEnd:    {EventContinue: true, EventQuit: true},
	PhaseRewardClaim: {EventClaim: true, EventQuit: true},
}

// CanDispatch reports whether ev is accepted in the current phase.
// EventMatchOver also needs a finished match with its result recorded.
func (s *GameState) CanDispatch(ev Event) bool {
	if ev == EventMatchOver && (!s.Match.Over || s.LastResult == nil) {
		return false
	}
	return transitions[s.Phase][ev]
}

// Dispatch applies ev to the phase machine. An event the current phase does
// not accept returns ErrInvalidTransition and changes nothing.
func (s *GameState) Dispatch(ev Event) error {
	if !s.CanDispatch(ev) {
		return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, s.Phase)
	}

	switch ev {
	case EventStart:
		s.Phase = PhaseLevelIntro
	case EventBegin:
		s.StartLevel()
		s.Phase = PhasePlaying
	case EventPause:
		s.Phase = PhasePaused
	case EventResume:
		s.Phase = PhasePlaying
	case EventMatchOver:
		s.Phase = PhaseRoundEnd
	case EventContinue:
		s.Phase = PhaseRewardClaim
	case EventClaim:
		won := s.LastResult != nil && s.LastResult.Won
		if s.ClaimLevel(won) {
			s.Phase = PhaseLevelIntro
		} else {
			s.StartLevel()
			s.Phase = PhasePlaying
		}
	case EventQuit:
		s.Phase = PhaseMenu
	}
	return nil
}

// Tick advances one frame of play by dt milliseconds: player smoothing,
// ball physics, bot movement, serve handling, paddle hits and scoring.
// It does nothing outside PhasePlaying. When the frame ends the match the
// result is returned and the phase moves to PhaseRoundEnd.
func (s *GameState) Tick(dt float64) *MatchResult {
	if s.Phase != PhasePlaying || s.Match.Over {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	s.Match.ElapsedMS += dt

	s.smoothPlayer()
	from := s.Ball.Pos()
	s.Advance(dt)
	UpdateBotMovement(&s.Bot, s.Ball, s.BotSpeed, dt, s.cfg.Bot, s.rng)
	s.holdServe(dt)
	s.resolveHits(from)

	winner, scored := s.pointWinner()
	if !scored || !s.AwardPoint(winner) {
		return nil
	}

	res := s.finishMatch()
	//nolint:errcheck // Over and LastResult are both set, so the event is accepted
	s.Dispatch(EventMatchOver)
	return res
}
