package pingpong

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pingpong/internal/config"
)

func TestAdvanceHeldIsNoop(t *testing.T) {
	s := newState(1, 1)
	s.Match.BallHeld = true
	s.Ball = Ball{U: 0.4, V: 0.3, Z: 0.5, VU: 0.001, VV: 0.002, VZ: 0.003, Radius: 0.02}
	before := s.Ball

	s.Advance(16)

	assert.Equal(t, before, s.Ball)
}

func TestAdvanceFloorBounce(t *testing.T) {
	p := config.DefaultConfig().Physics
	b := Ball{U: 0.5, V: 0.5, Z: 0.1005, VZ: -0.001, VU: 0.001}

	Advance(&b, p, 1)

	vzPre := -0.001 + p.Gravity
	assert.Equal(t, p.Floor, b.Z)
	assert.InDelta(t, -vzPre*0.7, b.VZ, 1e-12)
	assert.InDelta(t, 0.001*0.95, b.VU, 1e-12)
}

func TestAdvanceNeverBelowFloor(t *testing.T) {
	p := config.DefaultConfig().Physics
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		b := Ball{
			U:  rng.Float64(),
			V:  rng.Float64(),
			Z:  0.1 + rng.Float64(),
			VZ: (rng.Float64() - 0.5) * 0.01,
		}
		for step := 0; step < 300; step++ {
			Advance(&b, p, 1+rng.Float64()*49)
			if b.Z < p.Floor {
				t.Fatalf("z = %v below floor after step %d", b.Z, step)
			}
		}
	}
}

func TestAdvanceWallReflection(t *testing.T) {
	p := config.DefaultConfig().Physics

	tests := []struct {
		name string
		u    float64
		vu   float64
	}{
		{"right wall", 0.995, 0.01},
		{"left wall", 0.005, -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{U: tt.u, V: 0.5, Z: 0.5, VU: tt.vu}
			Advance(&b, p, 1)

			assert.InDelta(t, -tt.vu*0.9*0.95, b.VU, 1e-12)
			assert.GreaterOrEqual(t, b.U, 0.0)
			assert.LessOrEqual(t, b.U, 1.0)
		})
	}
}

func TestAdvanceNoDoubleReflection(t *testing.T) {
	p := config.DefaultConfig().Physics
	b := Ball{U: 0.995, V: 0.5, Z: 0.5, VU: 0.01}

	Advance(&b, p, 1)
	vu := b.VU
	Advance(&b, p, 1)

	assert.Equal(t, vu, b.VU)
	assert.Less(t, b.U, 1.0)
}

func TestAdvanceNegativeDelta(t *testing.T) {
	p := config.DefaultConfig().Physics
	b := Ball{U: 0.5, V: 0.5, Z: 0.5, VU: 0.001, VV: 0.001, VZ: 0.001}
	before := b

	Advance(&b, p, -20)

	assert.Equal(t, before, b)
}
