package arrangement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.True(t, Equal(1, 1-Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
	assert.False(t, Equal(0, 1))
}

func TestStrictlyGreater(t *testing.T) {
	assert.True(t, StrictlyGreater(2, 1))
	assert.False(t, StrictlyGreater(1, 2))
	assert.False(t, StrictlyGreater(1, 1))
	// Within tolerance counts as equal, not greater.
	assert.False(t, StrictlyGreater(1+Tolerance/2, 1))
	assert.True(t, StrictlyGreater(1+Tolerance*2, 1))
}

func TestApproxEqual(t *testing.T) {
	p := &Point{0.5, 0.5}
	assert.True(t, p.ApproxEqual(&Point{0.5, 0.5}))
	assert.True(t, p.ApproxEqual(&Point{0.5 + Tolerance/3, 0.5 - Tolerance/3}))
	assert.False(t, p.ApproxEqual(&Point{0.5 + Tolerance*2, 0.5}))
	assert.False(t, p.ApproxEqual(&Point{0.5, 0.6}))
}

func TestLexBefore(t *testing.T) {
	assert.True(t, (&Point{0, 0}).LexBefore(&Point{1, 0}))
	assert.False(t, (&Point{1, 0}).LexBefore(&Point{0, 0}))
	// Near-equal X falls through to the Y comparison, so points on a
	// vertical line sort by height regardless of X noise.
	assert.True(t, (&Point{0.2, 0.1}).LexBefore(&Point{0.2 + Tolerance/2, 0.9}))
	assert.False(t, (&Point{0.2, 0.9}).LexBefore(&Point{0.2 - Tolerance/2, 0.1}))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}
