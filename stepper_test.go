package pebble

import "testing"

func newTestSim() (*World, *Stepper, WorldConfig) {
	cfg := DefaultConfig().World
	// Dyadic step so accumulator arithmetic is exact and step counts are
	// deterministic regardless of how ticks are split.
	cfg.FixedStep = 1.0 / 128.0
	w := NewWorld(cfg)
	return w, NewStepper(w, cfg), cfg
}

// bodiesEqual compares complete body state across two worlds.
func bodiesEqual(t *testing.T, a, b *World) {
	t.Helper()
	if len(a.bodies) != len(b.bodies) {
		t.Fatalf("body counts differ: %d vs %d", len(a.bodies), len(b.bodies))
	}
	for i := range a.bodies {
		if a.bodies[i] != b.bodies[i] {
			t.Fatalf("body %d diverged: %+v vs %+v", i, a.bodies[i], b.bodies[i])
		}
	}
}

func TestTickAccumulatorPhasePreservation(t *testing.T) {
	// The same total time, split differently across ticks, runs the same
	// number of fixed steps and produces bitwise-identical state.
	wa, sa, cfg := newTestSim()
	wb, sb, _ := newTestSim()
	for _, w := range []*World{wa, wb} {
		w.Spawn(200, 100, 12, 35, 0, ColorWhite)
		w.Spawn(400, 200, 18, -20, 10, ColorWhite)
		w.Spawn(410, 214, 15, 0, -5, ColorWhite)
	}

	sa.Tick(3 * cfg.FixedStep)
	for i := 0; i < 3; i++ {
		sb.Tick(cfg.FixedStep)
	}

	bodiesEqual(t, wa, wb)
	assertNear(t, "accumulator A", sa.acc, 0)
	assertNear(t, "accumulator B", sb.acc, 0)
}

func TestTickCarriesRemainder(t *testing.T) {
	w, s, cfg := newTestSim()
	w.Spawn(200, 100, 12, 0, 0, ColorWhite)

	// Half a step: nothing runs, the fraction is banked.
	s.Tick(cfg.FixedStep / 2)
	if w.stepCount != 0 {
		t.Fatalf("stepCount = %d after half a step, want 0", w.stepCount)
	}

	// The second half completes exactly one step.
	s.Tick(cfg.FixedStep / 2)
	if w.stepCount != 1 {
		t.Fatalf("stepCount = %d, want 1", w.stepCount)
	}
	assertNear(t, "accumulator", s.acc, 0)
}

func TestTickClampsFrameDelta(t *testing.T) {
	// A huge stall delta is clamped, so at most the configured ceiling of
	// time enters the accumulator.
	w, s, cfg := newTestSim()
	w.Spawn(200, 100, 12, 0, 0, ColorWhite)

	s.Tick(1000)
	maxSteps := int(cfg.MaxFrameDelta / cfg.FixedStep)
	if maxSteps > cfg.MaxSubsteps {
		maxSteps = cfg.MaxSubsteps
	}
	if w.stepCount != maxSteps {
		t.Errorf("stepCount = %d after stall tick, want %d", w.stepCount, maxSteps)
	}
}

func TestTickRespectsSubstepCeiling(t *testing.T) {
	cfg := DefaultConfig().World
	cfg.MaxSubsteps = 3
	cfg.MaxFrameDelta = 1
	w := NewWorld(cfg)
	s := NewStepper(w, cfg)
	w.Spawn(200, 100, 12, 0, 0, ColorWhite)

	s.Tick(10 * cfg.FixedStep)
	if w.stepCount != 3 {
		t.Errorf("stepCount = %d, want 3 (substep ceiling)", w.stepCount)
	}
	if s.acc > float64(cfg.MaxSubsteps)*cfg.FixedStep+epsilon {
		t.Errorf("accumulator %v exceeds banked-debt cap", s.acc)
	}
}

func TestTickNegativeElapsedIgnored(t *testing.T) {
	w, s, _ := newTestSim()
	w.Spawn(200, 100, 12, 0, 0, ColorWhite)

	s.Tick(-5)
	if w.stepCount != 0 || s.acc != 0 {
		t.Errorf("negative elapsed advanced the simulation: steps=%d acc=%v", w.stepCount, s.acc)
	}
}

func TestPauseFreezesState(t *testing.T) {
	w, s, cfg := newTestSim()
	h, _ := w.Spawn(200, 100, 12, 35, -20, ColorWhite)

	s.Tick(5 * cfg.FixedStep)
	before := *w.lookup(h)
	accBefore := s.acc

	s.SetPaused(true)
	for i := 0; i < 50; i++ {
		s.Tick(cfg.FixedStep)
	}
	if got := *w.lookup(h); got != before {
		t.Errorf("body changed while paused: %+v vs %+v", got, before)
	}
	if s.acc != accBefore {
		t.Errorf("accumulator advanced while paused: %v vs %v", s.acc, accBefore)
	}

	// Resume continues from the captured phase.
	s.SetPaused(false)
	s.Tick(cfg.FixedStep)
	if got := *w.lookup(h); got == before {
		t.Error("body unchanged after resume")
	}
}

func TestTogglePause(t *testing.T) {
	_, s, _ := newTestSim()
	if s.Paused() {
		t.Fatal("stepper starts paused")
	}
	if !s.TogglePause() || !s.Paused() {
		t.Error("first toggle did not pause")
	}
	if s.TogglePause() || s.Paused() {
		t.Error("second toggle did not resume")
	}
}

func TestStepOnceRunsWhilePaused(t *testing.T) {
	w, s, _ := newTestSim()
	h, _ := w.Spawn(200, 100, 12, 35, 0, ColorWhite)
	s.SetPaused(true)

	before := *w.lookup(h)
	s.StepOnce()
	if got := *w.lookup(h); got == before {
		t.Error("StepOnce did not advance a paused simulation")
	}
	if w.stepCount != 1 {
		t.Errorf("stepCount = %d, want 1", w.stepCount)
	}
}
