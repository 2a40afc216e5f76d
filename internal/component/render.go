// component/render.go
package component

import "image/color"

// Renderable holds how the target is drawn.
type Renderable struct {
	Color     color.RGBA
	SpawnTime float64 // игровое время появления, для анимации
}
