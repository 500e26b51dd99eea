package pingpong

import (
	"github.com/vovakirdan/pingpong/internal/config"
)

// seqRand replays a fixed sequence of values, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	if r.i >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func newState(category, level int, vals ...float64) *GameState {
	return NewGameState(config.DefaultConfig(), category, level, &seqRand{vals: vals}, 0)
}

// playing puts a state straight into a started match.
func playing(s *GameState) *GameState {
	s.Phase = PhaseLevelIntro
	if err := s.Dispatch(EventBegin); err != nil {
		panic(err)
	}
	return s
}
