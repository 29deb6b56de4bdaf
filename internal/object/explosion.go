package object

import (
	"math"

	"github.com/tomz197/galaxyblaster/internal/draw"
)

// Explosion growth and fade per tick, before slow-motion scaling.
const (
	ExplosionGrowth = 2.0
	ExplosionFade   = 0.04
	explosionArcs   = 8
)

// Explosion is the cosmetic burst left by a destroyed hostile.
type Explosion struct {
	X, Y   float64
	Radius float64
	Alpha  float64 // Opacity in [0, 1]
	Color  string
}

// NewExplosion creates a burst where h was destroyed.
func NewExplosion(h *Hostile) *Explosion {
	return &Explosion{
		X:      h.X,
		Y:      h.Y,
		Radius: h.Size / 2,
		Alpha:  1,
		Color:  h.Color,
	}
}

// Advance grows and fades the explosion. Returns true once fully faded.
func (e *Explosion) Advance(factor float64) bool {
	e.Radius += ExplosionGrowth * factor
	e.Alpha -= ExplosionFade * factor
	return e.Alpha <= 0
}

// Draw renders eight radial puffs and a center sparkle. Low opacity thins
// the burst down to outlines and then to the sparkle alone.
func (e *Explosion) Draw(ctx DrawContext) error {
	if e.Alpha <= 0 {
		return nil
	}
	x, y := ctx.ToScreen(e.X, e.Y)
	filled := e.Alpha > 0.6

	if e.Alpha > 0.2 {
		for i := 0; i < explosionArcs; i++ {
			a := float64(i) * 2 * math.Pi / explosionArcs
			center := draw.Point{X: x + math.Sin(a)*e.Radius, Y: y + math.Cos(a)*e.Radius}
			ctx.Canvas.DrawCircle(center, e.Radius/2, filled)
		}
	}

	ctx.Canvas.DrawCircle(draw.Point{X: x, Y: y}, e.Radius/1.5*e.Alpha, filled)
	return nil
}
