package pebble

// Stepper drives a World at a fixed physics rate from a variable-rate frame
// loop. It owns the time accumulator and the paused state; the frame loop
// only reports elapsed real time via [Stepper.Tick].
//
// The stepper is decoupled from any timer mechanism on purpose: tests feed
// it synthetic deltas and get identical results to a live run.
type Stepper struct {
	world *World

	fixedStep     float64
	maxSubsteps   int
	maxFrameDelta float64

	acc    float64
	paused bool
}

// NewStepper creates a Stepper for the given world, reading the timestep
// parameters from the world's configuration.
func NewStepper(w *World, cfg WorldConfig) *Stepper {
	return &Stepper{
		world:         w,
		fixedStep:     cfg.FixedStep,
		maxSubsteps:   cfg.MaxSubsteps,
		maxFrameDelta: cfg.MaxFrameDelta,
	}
}

// Tick advances the simulation by elapsed seconds of real time. The elapsed
// value is clamped to the configured ceiling so a stall (tab backgrounded,
// debugger pause) does not trigger a runaway catch-up burst. The clamped
// time enters the accumulator, and fixed substeps run while at least one
// step's worth is banked and the per-tick substep cap is not hit; the
// remainder carries to the next tick, preserving phase.
//
// While paused, ticks are accepted but nothing advances and the accumulator
// is left untouched.
func (s *Stepper) Tick(elapsed float64) {
	if s.paused {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > s.maxFrameDelta {
		elapsed = s.maxFrameDelta
	}

	s.acc += elapsed
	for steps := 0; s.acc >= s.fixedStep && steps < s.maxSubsteps; steps++ {
		s.world.step(s.fixedStep)
		s.acc -= s.fixedStep
	}

	// If the substep cap was hit repeatedly the accumulator could grow
	// without bound; cap the banked debt at one full tick's worth.
	if limit := float64(s.maxSubsteps) * s.fixedStep; s.acc > limit {
		s.acc = limit
	}
}

// StepOnce runs exactly one fixed substep, regardless of paused state or
// accumulator contents. Shells use it for single-step debugging while
// paused.
func (s *Stepper) StepOnce() {
	s.world.step(s.fixedStep)
}

// Paused reports whether the stepper is paused.
func (s *Stepper) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes the stepper. Pausing freezes all body state;
// resuming continues from the exact accumulator phase the pause captured.
func (s *Stepper) SetPaused(paused bool) {
	s.paused = paused
}

// TogglePause flips the paused state and returns the new value.
func (s *Stepper) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// FixedStep returns the substep duration in seconds.
func (s *Stepper) FixedStep() float64 {
	return s.fixedStep
}
