package system

import (
	"errors"
	"testing"

	"dot-smash/internal/component"
	"dot-smash/internal/utils"
)

// edgeSource всегда возвращает либо минимум, либо максимум диапазона.
type edgeSource struct {
	max bool
}

func (s edgeSource) Intn(n int) int {
	if s.max {
		return n - 1
	}
	return 0
}

func TestRandomPlacer_WithinBounds(t *testing.T) {
	placer := NewRandomPlacer(utils.NewPRNGService(7))

	cases := []struct {
		bounds component.Bounds
		radius int
	}{
		{component.Bounds{Width: 1280, Height: 720}, 50},
		{component.Bounds{Width: 100, Height: 100}, 50},
		{component.Bounds{Width: 101, Height: 300}, 50},
		{component.Bounds{Width: 640, Height: 480}, 1},
	}

	for _, c := range cases {
		for i := 0; i < 500; i++ {
			p, err := placer.Place(c.bounds, c.radius)
			if err != nil {
				t.Fatalf("Place(%v, %d) error = %v", c.bounds, c.radius, err)
			}
			if p.X < 0 || p.X > c.bounds.Width-2*c.radius {
				t.Fatalf("x = %d out of [0, %d]", p.X, c.bounds.Width-2*c.radius)
			}
			if p.Y < 0 || p.Y > c.bounds.Height-2*c.radius {
				t.Fatalf("y = %d out of [0, %d]", p.Y, c.bounds.Height-2*c.radius)
			}
		}
	}
}

func TestRandomPlacer_RangeIsInclusive(t *testing.T) {
	bounds := component.Bounds{Width: 1280, Height: 720}

	lo, err := NewRandomPlacer(edgeSource{}).Place(bounds, 50)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if lo != (component.Point{X: 0, Y: 0}) {
		t.Errorf("min position = %v, want (0,0)", lo)
	}

	hi, err := NewRandomPlacer(edgeSource{max: true}).Place(bounds, 50)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if hi != (component.Point{X: 1180, Y: 620}) {
		t.Errorf("max position = %v, want (1180,620)", hi)
	}
}

func TestRandomPlacer_ExactFitHasSinglePosition(t *testing.T) {
	placer := NewRandomPlacer(utils.NewPRNGService(1))
	p, err := placer.Place(component.Bounds{Width: 100, Height: 100}, 50)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if p != (component.Point{}) {
		t.Errorf("position = %v, want (0,0)", p)
	}
}

func TestRandomPlacer_Degenerate(t *testing.T) {
	placer := NewRandomPlacer(utils.NewPRNGService(1))

	if _, err := placer.Place(component.Bounds{Width: 99, Height: 720}, 50); !errors.Is(err, component.ErrDegenerateBounds) {
		t.Errorf("narrow bounds error = %v, want ErrDegenerateBounds", err)
	}
	if _, err := placer.Place(component.Bounds{Width: 1280, Height: 60}, 50); !errors.Is(err, component.ErrDegenerateBounds) {
		t.Errorf("short bounds error = %v, want ErrDegenerateBounds", err)
	}
	if _, err := placer.Place(component.Bounds{Width: 1280, Height: 720}, 0); !errors.Is(err, component.ErrInvalidRadius) {
		t.Errorf("zero radius error = %v, want ErrInvalidRadius", err)
	}
}

func TestRandomPlacer_SameSeedSameSequence(t *testing.T) {
	bounds := component.Bounds{Width: 1280, Height: 720}
	a := NewRandomPlacer(utils.NewPRNGService(99))
	b := NewRandomPlacer(utils.NewPRNGService(99))
	for i := 0; i < 20; i++ {
		pa, _ := a.Place(bounds, 50)
		pb, _ := b.Place(bounds, 50)
		if pa != pb {
			t.Fatalf("step %d: %v != %v", i, pa, pb)
		}
	}
}
