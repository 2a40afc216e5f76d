package utils

import (
	"math"
	"testing"
)

func TestPRNGService_Deterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: %d != %d with the same seed", i, x, y)
		}
	}
}

func TestPRNGService_ZeroSeedUsesTime(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Error("seed 0 should be replaced by a time based seed")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
}

func TestEaseOutCubic_Endpoints(t *testing.T) {
	if got := EaseOutCubic(-1); got != 0 {
		t.Errorf("EaseOutCubic(-1) = %v, want 0", got)
	}
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := EaseOutCubic(2); got != 1 {
		t.Errorf("EaseOutCubic(2) = %v, want 1", got)
	}
}

func TestEaseOutCubic_NeverExceedsOne(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		got := EaseOutCubic(x)
		if got > 1 {
			t.Fatalf("EaseOutCubic(%v) = %v, exceeds 1", x, got)
		}
		if got < prev {
			t.Fatalf("EaseOutCubic not monotonic at %v: %v < %v", x, got, prev)
		}
		prev = got
	}
	if math.Abs(prev-1) > 1e-12 {
		t.Errorf("EaseOutCubic(1) = %v, want 1", prev)
	}
}
