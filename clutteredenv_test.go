package clutteredenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestConstruct(t *testing.T) {
	obstacle, err := NewObstacle([]*Point{{X: 0.2, Y: 0.2}, {X: 0.6, Y: 0.2}, {X: 0.2, Y: 0.5}})
	assert.NoError(t, err)

	arr, err := Construct(obstacle)
	assert.NoError(t, err)
	assert.Len(t, arr.Obstacles, 1)
	assert.Len(t, arr.Points, 13)
	assert.Len(t, arr.Faces, 6)
}

func TestConstructEmptyInput(t *testing.T) {
	arr, err := Construct()
	assert.NoError(t, err)
	assert.Len(t, arr.Points, 4)
	assert.Len(t, arr.Faces, 1)
}

func TestConstructError(t *testing.T) {
	arr, err := Construct(&Obstacle{
		Constraints: []Halfplane{{Normal: Point{X: 1, Y: 0}, Offset: 1}},
		Vertices:    []*Point{{X: 0.5, Y: 0.5}},
	})
	assert.Error(t, err)
	assert.Nil(t, arr)
}

func TestNewObstacleError(t *testing.T) {
	obstacle, err := NewObstacle([]*Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
	assert.Nil(t, obstacle)
}
