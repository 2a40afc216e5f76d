// internal/system/placement.go
package system

import "dot-smash/internal/component"

// RandomSource returns values in [0, n) from Intn.
type RandomSource interface {
	Intn(n int) int
}

// RandomPlacer выбирает равномерно случайную позицию, при которой цель
// целиком помещается в игровое поле.
type RandomPlacer struct {
	rng RandomSource
}

func NewRandomPlacer(rng RandomSource) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

// Place returns the top-left corner of the target's bounding square,
// x in [0, width-2r] and y in [0, height-2r], both ends inclusive.
func (p *RandomPlacer) Place(bounds component.Bounds, radius int) (component.Point, error) {
	if err := bounds.Fits(radius); err != nil {
		return component.Point{}, err
	}
	maxX := bounds.Width - radius*2
	maxY := bounds.Height - radius*2
	return component.Point{
		X: p.rng.Intn(maxX + 1),
		Y: p.rng.Intn(maxY + 1),
	}, nil
}
