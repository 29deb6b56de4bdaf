package object

import "github.com/tomz197/galaxyblaster/internal/draw"

// ProjectileSpeed is the upward distance a projectile covers per tick.
const ProjectileSpeed = 12.0

// ProjectileTopBound is the y below which a projectile has left the view.
const ProjectileTopBound = -40.0

// Projectile is a bullet fired by the player.
type Projectile struct {
	X, Y      float64 // Position
	Speed     float64 // Upward speed per tick
	destroyed bool    // Marked for destruction
}

// NewProjectile creates a projectile at position (x,y).
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{X: x, Y: y, Speed: ProjectileSpeed}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// Advance moves the projectile up. Returns true once it has crossed the top bound.
func (p *Projectile) Advance(factor float64) bool {
	p.Y -= p.Speed * factor
	return p.Y < ProjectileTopBound
}

// Draw renders the projectile as a short vertical streak.
func (p *Projectile) Draw(ctx DrawContext) error {
	x, y := ctx.ToScreen(p.X, p.Y)
	ctx.Canvas.DrawLine(draw.Point{X: x, Y: y - 24}, draw.Point{X: x, Y: y + 24})
	return nil
}
