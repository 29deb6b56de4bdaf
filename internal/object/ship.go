package object

import (
	"github.com/tomz197/galaxyblaster/internal/draw"
	"github.com/tomz197/galaxyblaster/internal/physics"
)

// Ship defaults.
const (
	ShipSize         = 120.0 // Width and height of the ship sprite
	ShipSpeed        = 10.0  // Keyboard movement per tick
	ShipBottomOffset = 100.0 // Distance from the bottom edge to the ship center
	ShipEdgeMargin   = 40.0  // Closest the ship center may get to a side edge
	MuzzleOffset     = 50.0  // Projectiles leave this far above the ship center
)

// Ship is the player-controlled spaceship. It only moves horizontally.
type Ship struct {
	X, Y  float64 // Center
	W, H  float64 // Sprite extents
	Speed float64 // Keyboard movement per tick
}

// NewShip creates a ship centered horizontally near the bottom of the view.
func NewShip(view Screen) *Ship {
	return &Ship{
		X:     float64(view.Width) / 2,
		Y:     float64(view.Height) - ShipBottomOffset,
		W:     ShipSize,
		H:     ShipSize,
		Speed: ShipSpeed,
	}
}

// Radius returns the ship's collision radius.
func (s *Ship) Radius() float64 {
	return s.W / 2
}

// MoveTo places the ship at x, clamped to [ShipEdgeMargin, width-ShipEdgeMargin].
func (s *Ship) MoveTo(x, width float64) {
	hi := width - ShipEdgeMargin
	if hi < ShipEdgeMargin {
		hi = ShipEdgeMargin
	}
	s.X = physics.Clamp(x, ShipEdgeMargin, hi)
}

// Muzzle returns where a fired projectile starts.
func (s *Ship) Muzzle() (float64, float64) {
	return s.X, s.Y - MuzzleOffset
}

// Draw renders the ship as an upward-pointing arrowhead.
func (s *Ship) Draw(ctx DrawContext) error {
	x, y := ctx.ToScreen(s.X, s.Y)
	hw := s.W / 2
	hh := s.H / 2

	points := ctx.Canvas.BorrowPoints(4)
	points[0] = draw.Point{X: x, Y: y - hh}
	points[1] = draw.Point{X: x + hw*0.8, Y: y + hh*0.8}
	points[2] = draw.Point{X: x, Y: y + hh*0.4}
	points[3] = draw.Point{X: x - hw*0.8, Y: y + hh*0.8}
	ctx.Canvas.DrawPolygon(points, true)
	return nil
}
