package geometry

import (
	"testing"

	"github.com/nkall/duskmarch/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestAABBRayIntersectHit(t *testing.T) {
	box := NewAABB(-1, 1, -1, 1, -1, 1)
	hit := box.RayIntersect(vecmath.NewVec3(0, 0, -5), vecmath.NewVec3(0, 0, 1), 100)
	assert.True(t, hit)
}

func TestAABBRayIntersectMiss(t *testing.T) {
	box := NewAABB(-1, 1, -1, 1, -1, 1)
	miss := box.RayIntersect(vecmath.NewVec3(10, 10, -5), vecmath.NewVec3(0, 0, 1), 100)
	assert.False(t, miss)
}

func TestAABBRayIntersectBeyondTMax(t *testing.T) {
	box := NewAABB(-1, 1, -1, 1, -1, 1)
	hit := box.RayIntersect(vecmath.NewVec3(0, 0, -100), vecmath.NewVec3(0, 0, 1), 1)
	assert.False(t, hit)
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(0, 1, 0, 1, 0, 1)
	b := NewAABB(-1, 0, -1, 0, -1, 0)
	u := a.Union(b)
	assert.Equal(t, NewAABB(-1, 1, -1, 1, -1, 1), u)
}

func TestAABBDiagonal(t *testing.T) {
	box := NewAABB(0, 3, 0, 4, 0, 0)
	assert.InDelta(t, 5.0, box.Diagonal(), 1e-9)
}
