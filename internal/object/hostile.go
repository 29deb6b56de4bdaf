package object

import (
	"math"

	"github.com/tomz197/galaxyblaster/internal/draw"
)

// Regular hostile ranges.
const (
	MeteorMinSize  = 64.0
	MeteorSizeSpan = 64.0 // Sizes fall in [MeteorMinSize, MeteorMinSize+MeteorSizeSpan)
	MeteorMinSpeed = 1.0
	MeteorSpanSpd  = 1.2
	MeteorColor    = "#fff"
)

// Boss attributes.
const (
	BossSize   = 200.0
	BossSpeed  = 0.7
	BossHP     = 10
	BossSpawnY = -100.0
	BossColor  = "#ff00ff"
)

// HitRadiusScale converts a hostile's size to its collision radius.
const HitRadiusScale = 0.8

// Kind tags a hostile for sprite selection.
type Kind int

const (
	KindMeteor    Kind = iota // Regular hostile
	KindBoss                  // Intermediate boss
	KindFinalBoss             // Last boss of the level
)

// Hostile is a descending enemy: a regular meteor or a multi-hit boss.
type Hostile struct {
	X, Y      float64   // Center
	Size      float64   // Size; collision radius is Size*HitRadiusScale
	Speed     float64   // Downward speed per tick
	Color     string    // Visual tag, inherited by the explosion
	Boss      bool      // Multi-hit boss
	Final     bool      // Last boss of the level
	HP        int       // Remaining hit points
	Wave      int       // Boss threshold index, -1 for meteors
	Angle     float64   // Current rotation (cosmetic)
	Spin      float64   // Rotation per tick (cosmetic)
	Vertices  []float64 // Vertex distances from center, for an irregular outline
	Destroyed bool      // Mark for removal
}

// NewMeteor creates a regular hostile above the top edge of a view of the
// given width. Size, x and speed are drawn from rng in that order.
func NewMeteor(rng Rand, width float64) *Hostile {
	size := MeteorMinSize + rng.Float64()*MeteorSizeSpan
	x := size + rng.Float64()*(width-size*2)
	speed := MeteorMinSpeed + rng.Float64()*MeteorSpanSpd

	// Irregular outline (8-12 vertices, radius ±30%)
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = 0.7 + rng.Float64()*0.6
	}

	return &Hostile{
		X:        x,
		Y:        -size,
		Size:     size,
		Speed:    speed,
		Color:    MeteorColor,
		HP:       1,
		Wave:     -1,
		Spin:     (rng.Float64() - 0.5) * 0.04,
		Vertices: vertices,
	}
}

// NewBoss creates the boss for threshold index wave, centered horizontally.
func NewBoss(width float64, wave int, final bool) *Hostile {
	return &Hostile{
		X:     width / 2,
		Y:     BossSpawnY,
		Size:  BossSize,
		Speed: BossSpeed,
		Color: BossColor,
		Boss:  true,
		Final: final,
		HP:    BossHP,
		Wave:  wave,
		Spin:  0.01,
	}
}

// Kind returns the sprite tag for this hostile.
func (h *Hostile) Kind() Kind {
	switch {
	case h.Boss && h.Final:
		return KindFinalBoss
	case h.Boss:
		return KindBoss
	default:
		return KindMeteor
	}
}

// Radius returns the collision radius.
func (h *Hostile) Radius() float64 {
	return h.Size * HitRadiusScale
}

// Advance moves the hostile down. Returns true once it has left the view
// through the bottom edge.
func (h *Hostile) Advance(factor, height float64) bool {
	h.Y += h.Speed * factor
	h.Angle += h.Spin * factor
	return h.Y > height+h.Size
}

// Hit removes one hit point. Returns true when the hostile is destroyed.
func (h *Hostile) Hit() bool {
	h.HP--
	if h.HP <= 0 {
		h.Destroyed = true
		return true
	}
	return false
}

// MarkDestroyed marks the hostile for removal.
func (h *Hostile) MarkDestroyed() {
	h.Destroyed = true
}

// IsDestroyed returns true if the hostile is marked for removal.
func (h *Hostile) IsDestroyed() bool {
	return h.Destroyed
}

// Draw renders the hostile according to its kind.
func (h *Hostile) Draw(ctx DrawContext) error {
	x, y := ctx.ToScreen(h.X, h.Y)
	r := h.Radius()

	switch h.Kind() {
	case KindMeteor:
		h.drawOutline(ctx, x, y, r)
	case KindBoss:
		ctx.Canvas.DrawCircle(draw.Point{X: x, Y: y}, r, false)
		ctx.Canvas.DrawCircle(draw.Point{X: x, Y: y}, r*0.5, true)
	case KindFinalBoss:
		ctx.Canvas.DrawCircle(draw.Point{X: x, Y: y}, r*0.7, true)
		h.drawSpikes(ctx, x, y, r)
	}
	return nil
}

// drawOutline draws the irregular meteor polygon.
func (h *Hostile) drawOutline(ctx DrawContext, x, y, r float64) {
	numVerts := len(h.Vertices)
	if numVerts < 3 {
		ctx.Canvas.DrawCircle(draw.Point{X: x, Y: y}, r, false)
		return
	}
	points := ctx.Canvas.BorrowPoints(numVerts)
	for i, scale := range h.Vertices {
		a := h.Angle + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: x + math.Cos(a)*r*scale,
			Y: y + math.Sin(a)*r*scale,
		}
	}
	ctx.Canvas.DrawPolygon(points, false)
}

// drawSpikes draws the rotating crown around the final boss.
func (h *Hostile) drawSpikes(ctx DrawContext, x, y, r float64) {
	const spikes = 12
	for i := 0; i < spikes; i++ {
		a := h.Angle + float64(i)*2*math.Pi/spikes
		inner := draw.Point{X: x + math.Cos(a)*r*0.7, Y: y + math.Sin(a)*r*0.7}
		outer := draw.Point{X: x + math.Cos(a)*r, Y: y + math.Sin(a)*r}
		ctx.Canvas.DrawLine(inner, outer)
	}
}
