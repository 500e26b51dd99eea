package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	TickRate   int     // Frames per second requested from the host loop
	Seed       int64   // RNG seed for deterministic gameplay
	MaxFrameMS float64 // Upper bound on a single frame's elapsed time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		MaxFrameMS: 50,
	}
}

// FrameDelta clamps an elapsed wall-clock interval in milliseconds to
// [0, MaxFrameMS]. A zero MaxFrameMS disables the upper bound.
func (c RuntimeConfig) FrameDelta(elapsedMS float64) float64 {
	if elapsedMS < 0 {
		return 0
	}
	if c.MaxFrameMS > 0 && elapsedMS > c.MaxFrameMS {
		return c.MaxFrameMS
	}
	return elapsedMS
}
