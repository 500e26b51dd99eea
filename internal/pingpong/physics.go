package pingpong

import "github.com/vovakirdan/pingpong/internal/config"

// Advance moves the ball by dt milliseconds unless it is held for a serve.
func (s *GameState) Advance(dt float64) {
	if s.Match.BallHeld {
		return
	}
	Advance(&s.Ball, s.cfg.Physics, dt)
}

// Advance integrates gravity, table bounce, planar motion and side-wall
// reflection for dt milliseconds. Negative dt is treated as zero.
// After the call ball.Z >= p.Floor.
func Advance(b *Ball, p config.PhysicsConfig, dt float64) {
	if dt < 0 {
		dt = 0
	}

	b.VZ += p.Gravity * dt
	b.Z += b.VZ * dt

	if b.Z <= p.Floor {
		b.Z = p.Floor
		b.VZ *= -p.BounceFactor
		b.VU *= p.SpinDamping
	}

	b.U += b.VU * dt
	b.V += b.VV * dt

	// Reflect only while heading out so a ball resting past the edge
	// does not flip back and forth.
	if (b.U < 0 && b.VU < 0) || (b.U > 1 && b.VU > 0) {
		b.VU *= -p.WallRestitution
		b.VU *= p.WallDamping
	}
	if b.U < 0 {
		b.U = 0
	} else if b.U > 1 {
		b.U = 1
	}
}
