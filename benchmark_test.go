package pebble

import (
	"math/rand/v2"
	"testing"
)

// setupBenchWorld creates a world with n seeded random bodies.
func setupBenchWorld(n int) (*World, WorldConfig) {
	cfg := DefaultConfig().World
	w := NewWorld(cfg)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < n; i++ {
		r := 4 + rng.Float64()*10
		x := r + rng.Float64()*(cfg.Width-2*r)
		y := r + rng.Float64()*(cfg.Height-2*r)
		w.Spawn(x, y, r, (rng.Float64()-0.5)*200, (rng.Float64()-0.5)*200, ColorWhite)
	}
	return w, cfg
}

func BenchmarkStep_1000Bodies(b *testing.B) {
	w, cfg := setupBenchWorld(1000)
	w.step(cfg.FixedStep) // warmup: settle cell size and hash capacity

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.step(cfg.FixedStep)
	}
}

func BenchmarkStep_10000Bodies(b *testing.B) {
	w, cfg := setupBenchWorld(10000)
	w.step(cfg.FixedStep)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.step(cfg.FixedStep)
	}
}

func BenchmarkBroadphaseRebuild_10000Bodies(b *testing.B) {
	w, cfg := setupBenchWorld(10000)
	w.step(cfg.FixedStep)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.hash.rebuild(w.bodies)
	}
}

func BenchmarkSnapshot_10000Bodies(b *testing.B) {
	w, _ := setupBenchWorld(10000)
	buf := w.Snapshot(nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = w.Snapshot(buf[:0])
	}
}
