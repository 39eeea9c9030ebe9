package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollide(t *testing.T) {
	tests := []struct {
		name     string
		r1, r2   Rect
		expected bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"edges touch horizontally", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"edges touch vertically", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), true},
		{"containing", NewRect(2, 2, 2, 2), NewRect(0, 0, 10, 10), true},
		{"negative coordinates", NewRect(-10, -10, 12, 12), NewRect(0, 0, 4, 4), true},
		{"left of", NewRect(10, 10, 5, 5), NewRect(0, 10, 10, 5), false},
		{"above", NewRect(10, 10, 5, 5), NewRect(10, 0, 5, 10), false},
		{"one pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"zero width inside", NewRect(0, 0, 10, 10), NewRect(5, 5, 0, 3), false},
		{"zero height inside", NewRect(5, 5, 3, 0), NewRect(0, 0, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collide(tt.r1, tt.r2))
			assert.Equal(t, tt.expected, Collide(tt.r2, tt.r1), "collision should be symmetric")
		})
	}
}

func TestCollidePoint(t *testing.T) {
	r := NewRect(-2, 4, 4, 4)

	assert.True(t, CollidePoint(Point{X: -2, Y: 4}, r))
	assert.True(t, CollidePoint(Point{X: 1, Y: 7}, r))
	assert.False(t, CollidePoint(Point{X: 2, Y: 7}, r), "right edge is exclusive")
	assert.False(t, CollidePoint(Point{X: 0, Y: 8}, r), "bottom edge is exclusive")
	assert.False(t, CollidePoint(Point{X: 0, Y: 0}, NewRect(0, 0, 0, 0)))
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-3, 2, 5, 6)
	assert.Equal(t, 2, r.Right())
	assert.Equal(t, 8, r.Bottom())
	assert.False(t, r.Empty())
	assert.True(t, NewRect(1, 1, 0, 5).Empty())
}
