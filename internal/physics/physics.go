// Package physics provides collision detection and distance utilities.
package physics

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	if minDist <= 0 {
		return false
	}
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// PointInCircle checks if a point lies strictly inside a circle.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return CirclesOverlap(px, py, 0, cx, cy, radius)
}

// Clamp limits v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
