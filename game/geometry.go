package game

import (
	"math"
	"math/rand"
)

// Circle is anything that occupies a collision circle on the playfield.
type Circle interface {
	Center() (x, y float64)
	CollisionRadius() float64
}

// Bounds is the playfield rectangle, anchored at the origin.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether the point lies inside the playfield (edges included).
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// CircleCollision reports whether two circles overlap.
// Tangent circles do not collide.
func CircleCollision(a, b Circle) bool {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(ax-bx, ay-by) < a.CollisionRadius()+b.CollisionRadius()
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// RandomRange returns a uniform value in [lo, hi).
func RandomRange(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
