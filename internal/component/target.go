// component/target.go
package component

// Placer выбирает новую позицию для цели.
type Placer interface {
	Place(bounds Bounds, radius int) (Point, error)
}

// Target is the dot the player clicks.
// Position хранит левый верхний угол описанного квадрата, как и при отрисовке.
type Target struct {
	Position Point
	Radius   int
}

// NewTarget создаёт цель и сразу ставит её в случайную позицию.
func NewTarget(placer Placer, bounds Bounds, radius int) (*Target, error) {
	t := &Target{Radius: radius}
	if err := t.Relocate(placer, bounds, radius); err != nil {
		return nil, err
	}
	return t, nil
}

// Relocate moves the target to a fresh position. On error the target is left as is.
func (t *Target) Relocate(placer Placer, bounds Bounds, radius int) error {
	pos, err := placer.Place(bounds, radius)
	if err != nil {
		return err
	}
	t.Position = pos
	t.Radius = radius
	return nil
}

// Center returns the circle center in screen coordinates.
func (t *Target) Center() Point {
	return Point{X: t.Position.X + t.Radius, Y: t.Position.Y + t.Radius}
}

// HitTest returns true if p lies on the circle, boundary included.
func (t *Target) HitTest(p Point) bool {
	c := t.Center()
	dx := c.X - p.X
	dy := c.Y - p.Y
	return dx*dx+dy*dy <= t.Radius*t.Radius
}
