package jumper

import "math/rand"

// Env is the host capability set the simulation depends on. Everything
// random and everything viewport-sized goes through it, so a World can run
// headless and deterministically.
//
// Time is not part of Env: the tick sequence is the only clock and the
// World counts it itself.
type Env interface {
	// Random returns a value in [lo, hi). It returns lo when hi <= lo.
	Random(lo, hi float64) float64
	// Viewport returns the current logical viewport size in pixels.
	Viewport() (w, h float64)
}

// Rewinder is implemented by environments whose random stream can be
// restarted from its seed. World.Reset rewinds such environments so a reset
// world replays exactly like a new one.
type Rewinder interface {
	Rewind()
}

// SeededEnv is an Env backed by math/rand with a fixed seed.
type SeededEnv struct {
	seed int64
	rng  *rand.Rand
	w, h float64
}

// NewSeededEnv creates an environment with the given seed and viewport.
func NewSeededEnv(seed int64, w, h float64) *SeededEnv {
	return &SeededEnv{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		w:    w,
		h:    h,
	}
}

// Random returns a uniformly distributed value in [lo, hi).
func (e *SeededEnv) Random(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Float64()*(hi-lo)
}

// Viewport returns the logical viewport size.
func (e *SeededEnv) Viewport() (float64, float64) {
	return e.w, e.h
}

// SetViewport updates the viewport, e.g. after a terminal resize.
func (e *SeededEnv) SetViewport(w, h float64) {
	e.w, e.h = w, h
}

// Seed returns the seed the environment was created with.
func (e *SeededEnv) Seed() int64 {
	return e.seed
}

// Rewind restarts the random stream from the seed.
func (e *SeededEnv) Rewind() {
	e.rng = rand.New(rand.NewSource(e.seed))
}
