// Package object defines the entities of a level attempt and how each one
// moves and draws itself.
package object

import (
	"github.com/tomz197/galaxyblaster/internal/draw"
)

// Rand is the random source entities draw their randomized attributes from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Camera is the offset applied to every world position when drawing.
// Screen shake moves the camera; the world itself never moves.
type Camera struct {
	X, Y float64
}

// Screen represents logical viewport dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Camera Camera       // Shake offset
	View   Screen       // Logical viewport
}

// ToScreen converts a world position to canvas coordinates.
func (ctx DrawContext) ToScreen(x, y float64) (float64, float64) {
	return x + ctx.Camera.X, y + ctx.Camera.Y
}

// Drawable is implemented by every entity the renderer knows about.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// ShouldRenderBlink returns true if an object with remaining protection
// ticks should be rendered this frame. The object is hidden during every
// other block of period ticks. Always true once protection is over.
func ShouldRenderBlink(remainingTicks, period int) bool {
	if remainingTicks <= 0 || period <= 0 {
		return true
	}
	return (remainingTicks/period)%2 != 0
}
