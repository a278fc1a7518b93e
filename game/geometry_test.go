package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func circleGen(t *rapid.T, label string) *Entity {
	return &Entity{
		X:      rapid.Float64Range(-1000, 1000).Draw(t, label+".x"),
		Y:      rapid.Float64Range(-1000, 1000).Draw(t, label+".y"),
		Radius: rapid.Float64Range(0, 200).Draw(t, label+".r"),
	}
}

func TestCircleCollision_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := circleGen(t, "a")
		b := circleGen(t, "b")
		if CircleCollision(a, b) != CircleCollision(b, a) {
			t.Fatalf("collision(a,b) != collision(b,a) for %+v %+v", a, b)
		}
	})
}

func TestCircleCollision_TangentDoesNotCollide(t *testing.T) {
	a := &Entity{X: 0, Y: 0, Radius: 5}

	assert.False(t, CircleCollision(a, &Entity{X: 10, Y: 0, Radius: 5}), "tangent circles")
	assert.True(t, CircleCollision(a, &Entity{X: 9.99, Y: 0, Radius: 5}), "overlapping circles")
	assert.False(t, CircleCollision(a, &Entity{X: 0, Y: 20, Radius: 5}), "separate circles")
	assert.True(t, CircleCollision(a, &Entity{X: 0, Y: 0, Radius: 0}), "point inside circle")
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"at lower edge", 0, 0, 10, 0},
		{"degenerate range", 7, 4, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestClamp_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1e6, 1e6).Draw(t, "lo")
		hi := lo + rapid.Float64Range(0, 1e6).Draw(t, "span")
		v := rapid.Float64Range(-1e7, 1e7).Draw(t, "v")

		got := Clamp(v, lo, hi)
		if got < lo || got > hi {
			t.Fatalf("Clamp(%v, %v, %v) = %v", v, lo, hi, got)
		}
	})
}

func TestRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomRange(rng, 100, 924)
		assert.GreaterOrEqual(t, v, 100.0)
		assert.Less(t, v, 924.0)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Width: 800, Height: 600}

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(800, 600))
	assert.False(t, b.Contains(-0.1, 300))
	assert.False(t, b.Contains(400, 600.1))
}
