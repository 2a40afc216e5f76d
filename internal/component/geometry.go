// component/geometry.go
package component

import (
	"errors"
	"fmt"
)

var (
	// круг заданного радиуса не помещается в область
	ErrDegenerateBounds = errors.New("target does not fit into the play area")
	// радиус должен быть положительным
	ErrInvalidRadius = errors.New("target radius must be positive")
)

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Bounds is the play area size.
type Bounds struct {
	Width, Height int
}

// Fits reports whether a circle of the given radius can be placed fully inside b.
func (b Bounds) Fits(radius int) error {
	if radius <= 0 {
		return fmt.Errorf("radius %d: %w", radius, ErrInvalidRadius)
	}
	if radius*2 > b.Width || radius*2 > b.Height {
		return fmt.Errorf("radius %d in %dx%d: %w", radius, b.Width, b.Height, ErrDegenerateBounds)
	}
	return nil
}
